package traitconv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bjaus/traitconv"
)

func metadataDoc(editions ...string) string {
	records := make([]string, len(editions))
	for i, e := range editions {
		records[i] = `{"name":"n` + e + `-` + string(rune('a'+i)) + `","description":"","edition":` + e +
			`,"attributes":[{"trait_type":"06 _ Chip","value":"c` + e + `"}]}`
	}
	return "[" + strings.Join(records, ",") + "]"
}

func TestConvertJSONToCSV(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := traitconv.Convert(strings.NewReader(metadataDoc("3", "1", "2", "1")), &out, traitconv.JSON)
	require.NoError(t, err)
	assert.Equal(t, csvHeader+
		"n1-b,,1,,,,,,c1\n"+
		"n1-d,,1,,,,,,c1\n"+
		"n2-c,,2,,,,,,c2\n"+
		"n3-a,,3,,,,,,c3\n", out.String())
}

func TestConvertCSVToJSON(t *testing.T) {
	t.Parallel()
	input := csvHeader + "B,,2,,,,,,\nA,d,1,blue,hat,long,short,red,gold\n"
	var out bytes.Buffer
	err := traitconv.Convert(strings.NewReader(input), &out, traitconv.CSV)
	require.NoError(t, err)

	got, err := traitconv.ReadMetadata(&out, traitconv.JSON)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, traitconv.ToMetadata(traitconv.Collectible{
		Name: "A", Description: "d", Edition: 1,
		Eye: "blue", Decoration: "hat", Arms: "long", Legs: "short", Body: "red", Chip: "gold",
	}), got[0])
	assert.Equal(t, traitconv.ToMetadata(traitconv.Collectible{Name: "B", Edition: 2}), got[1])
}

func TestConvertEmpty(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		from  traitconv.Format
		want  string
	}{
		"json array":  {input: "[]", from: traitconv.JSON, want: csvHeader},
		"csv header":  {input: csvHeader, from: traitconv.CSV, want: "[]\n"},
		"csv nothing": {input: "", from: traitconv.CSV, want: "[]\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			require.NoError(t, traitconv.Convert(strings.NewReader(tt.input), &out, tt.from))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestConvertYAML(t *testing.T) {
	t.Parallel()
	input := csvHeader + "B,,2,,,,,,\nA,,1,blue,,,,,\n"
	var yamlOut bytes.Buffer
	err := traitconv.Convert(strings.NewReader(input), &yamlOut, traitconv.CSV, traitconv.WithOutput(traitconv.YAML))
	require.NoError(t, err)

	var csvOut bytes.Buffer
	err = traitconv.Convert(&yamlOut, &csvOut, traitconv.YAML)
	require.NoError(t, err)
	assert.Equal(t, csvHeader+"A,,1,blue,,,,,\nB,,2,,,,,,\n", csvOut.String())
}

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()
	input := csvHeader +
		`A,"He said ""hi"", ok",1,blue,hat,long,short,red,gold` + "\n" +
		"B,,1,,,,,,\n" +
		"C,<html> & co,2,,,,,,\n"
	var jsonOut bytes.Buffer
	require.NoError(t, traitconv.Convert(strings.NewReader(input), &jsonOut, traitconv.CSV))
	var csvOut bytes.Buffer
	require.NoError(t, traitconv.Convert(&jsonOut, &csvOut, traitconv.JSON))
	assert.Equal(t, input, csvOut.String())
}

func TestConvertConfigErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		from traitconv.Format
		opts []traitconv.Option
	}{
		"unknown input":        {from: "XML"},
		"unknown output":       {from: traitconv.JSON, opts: []traitconv.Option{traitconv.WithOutput("XML")}},
		"metadata to metadata": {from: traitconv.JSON, opts: []traitconv.Option{traitconv.WithOutput(traitconv.YAML)}},
		"csv to csv":           {from: traitconv.CSV, opts: []traitconv.Option{traitconv.WithOutput(traitconv.CSV)}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			err := traitconv.Convert(strings.NewReader("[]"), &out, tt.from, tt.opts...)
			require.ErrorIs(t, err, traitconv.ErrConfig)
			require.ErrorIs(t, err, traitconv.ErrUnsupportedFormat)
			assert.Empty(t, out.String())
		})
	}
}

func TestConvertDecodeErrorWritesNothing(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		from  traitconv.Format
	}{
		"json": {input: metadataDoc("1") + "x", from: traitconv.JSON},
		"csv":  {input: csvHeader + "A,,1,,,,,,\nB,,x,,,,,,\n", from: traitconv.CSV},
		"json invalid utf-8": {
			input: `[{"name":"A` + "\xff" + `","description":"","edition":1,"attributes":[]}]`,
			from:  traitconv.JSON,
		},
		"csv invalid utf-8": {input: csvHeader + "A\xff,,1,,,,,,\n", from: traitconv.CSV},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			err := traitconv.Convert(strings.NewReader(tt.input), &out, tt.from)
			require.ErrorIs(t, err, traitconv.ErrInputDecode)
			assert.Empty(t, out.String())
		})
	}
}

func TestConvertEncodeError(t *testing.T) {
	t.Parallel()
	err := traitconv.Convert(strings.NewReader(metadataDoc("1")), errWriter{}, traitconv.JSON)
	require.ErrorIs(t, err, traitconv.ErrOutputEncode)
	require.ErrorIs(t, err, errWrite)
}

func TestConvertLogs(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	err := traitconv.Convert(strings.NewReader(metadataDoc("2", "1")), &out, traitconv.JSON, traitconv.WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("decoded records").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(2), fields["count"])
	assert.Equal(t, "JSON", fields["from"])
	assert.Equal(t, "CSV", fields["to"])
	assert.Equal(t, 1, logs.FilterMessage("encoded records").Len())
}

func TestConvertNilLogger(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := traitconv.Convert(strings.NewReader("[]"), &out, traitconv.JSON, traitconv.WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, csvHeader, out.String())
}
