package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invoice = "UNA:+,? '\n" +
	"UNB+UNOC:3+SENDER:ZZ+RECIPIENT+20211011:1030+00001'\n" +
	"UNH+1+SLGA:16:0:0'\n" +
	"FKT+01++123456789'\n" +
	"NAM+M?+S'\n" +
	"UNT+4+1'\n" +
	"UNZ+1+00001'\n"

// execute runs the root command with fresh flag values.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores defaults; cobra keeps flag values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersionCmd(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "", "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "edifact version test-version-1.0.0")
}

func TestTokenizeCmd_JSON(t *testing.T) {
	path := writeFile(t, "invoice.edi", invoice)

	out, err := execute(t, "", "tokenize", path)

	require.NoError(t, err)
	assert.Contains(t, out, `"tag": "FKT"`)
	assert.Contains(t, out, `"M+S"`)
	assert.Contains(t, out, `"decimalNotation": ","`)
	assert.NotContains(t, out, `"file"`)
}

func TestTokenizeCmd_Tree(t *testing.T) {
	path := writeFile(t, "invoice.edi", invoice)

	out, err := execute(t, "", "tokenize", "--format", "tree", path)

	require.NoError(t, err)
	assert.Contains(t, out, "interchange 00001 (UNOC 3) from SENDER to RECIPIENT")
	assert.Contains(t, out, "  message 1 SLGA")
	assert.Contains(t, out, "    FKT+01++123456789")
}

func TestTokenizeCmd_YAML(t *testing.T) {
	path := writeFile(t, "invoice.edi", invoice)

	out, err := execute(t, "", "tokenize", "--format", "yaml", path)

	require.NoError(t, err)
	assert.Contains(t, out, "messages:")
	assert.Contains(t, out, "tag: FKT")
	assert.Contains(t, out, "tag: NAM")
}

func TestTokenizeCmd_Stdin(t *testing.T) {
	out, err := execute(t, invoice, "tokenize", "-f", "tree", "-")

	require.NoError(t, err)
	assert.Contains(t, out, "message 1 SLGA")
}

func TestTokenizeCmd_Rejected(t *testing.T) {
	path := writeFile(t, "broken.edi", "UNB+UNOC:3'UNH+1+X'UNZ+1+1'")

	_, err := execute(t, "", "tokenize", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.edi")
}

func TestTokenizeCmd_UnknownFormat(t *testing.T) {
	path := writeFile(t, "invoice.edi", invoice)

	_, err := execute(t, "", "tokenize", "--format", "xml", path)

	assert.EqualError(t, err, "unknown format: xml")
}

func TestValidateCmd(t *testing.T) {
	good := writeFile(t, "good.edi", invoice)
	bad := writeFile(t, "bad.edi", "UNB+UNOC:3+1+2+3+4'UNZ+0+4")

	out, err := execute(t, "", "validate", good, bad)

	require.ErrorIs(t, err, errRejected)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "OK   "+good)
	assert.Contains(t, out, "FAIL "+bad)
}

func TestValidateCmd_Trailers(t *testing.T) {
	path := writeFile(t, "count.edi", strings.Replace(invoice, "UNT+4+1", "UNT+9+1", 1))

	_, err := execute(t, "", "validate", path)
	assert.NoError(t, err)

	_, err = execute(t, "", "validate", "--validate-trailers", path)
	assert.ErrorIs(t, err, errRejected)
}

func TestSniffCmd(t *testing.T) {
	path := writeFile(t, "invoice.edi", invoice)

	out, err := execute(t, "", "sniff", path)

	require.NoError(t, err)
	assert.Contains(t, out, "UNA:               true")
	assert.Contains(t, out, "syntax identifier: UNOC")
	assert.Contains(t, out, "sender:            SENDER")
	assert.Contains(t, out, "control reference: 00001")
}

func TestSniffCmd_JSON(t *testing.T) {
	path := writeFile(t, "invoice.edi", invoice)

	out, err := execute(t, "", "sniff", "--json", path)

	require.NoError(t, err)
	assert.Contains(t, out, `"recipient": "RECIPIENT"`)
	assert.Contains(t, out, `"terminator": "'"`)
}

func TestSniffCmd_YAML(t *testing.T) {
	path := writeFile(t, "invoice.edi", invoice)

	out, err := execute(t, "", "sniff", "--yaml", path)

	require.NoError(t, err)
	assert.Contains(t, out, "syntaxIdentifier: UNOC")
	assert.Contains(t, out, "serviceStringAdvice: true")

	_, err = execute(t, "", "sniff", "--yaml", "--json", path)
	assert.Error(t, err)
}

func TestRenderCmd(t *testing.T) {
	path := writeFile(t, "invoice.edi", invoice)

	out, err := execute(t, "", "render", path)

	require.NoError(t, err)
	assert.Equal(t,
		"UNB+UNOC:3+SENDER:ZZ+RECIPIENT+20211011:1030+00001'UNH+1+SLGA:16:0:0'FKT+01++123456789'NAM+M?+S'UNT+4+1'UNZ+1+00001'",
		out)
}

func TestRenderCmd_Delimiters(t *testing.T) {
	path := writeFile(t, "invoice.edi", invoice)

	out, err := execute(t, "", "render", "--element", "|", "--terminator", "~", "--newline", "lf", path)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "UNA:|,? ~\nUNB|UNOC:3|SENDER:ZZ|"), out)
	assert.Contains(t, out, "NAM|M+S~\n")
}

func TestRenderCmd_Latin1(t *testing.T) {
	path := writeFile(t, "latin1.edi", "UNB+UNOC:3+1+2+3+4'UNH+1+X'NAM+M\xfcller'UNT+3+1'UNZ+1+4'")

	out, err := execute(t, "", "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "NAM+M\xfcller'")

	out, err = execute(t, "", "render", "--utf8", path)
	require.NoError(t, err)
	assert.Contains(t, out, "NAM+Müller'")
}

func TestRenderCmd_InvalidFlags(t *testing.T) {
	path := writeFile(t, "invoice.edi", invoice)

	_, err := execute(t, "", "render", "--element", "||", path)
	assert.ErrorContains(t, err, "--element must be a single character")

	_, err = execute(t, "", "render", "--newline", "tab", path)
	assert.EqualError(t, err, "unknown newline: tab")

	_, err = execute(t, "", "render", "--element", ":", path)
	assert.ErrorContains(t, err, "invalid Delimiters")
}

func TestRootCmd_Config(t *testing.T) {
	config := writeFile(t, "edifact.toml", `
[envelope]
interchange_open = "BGN"
interchange_close = "END"

[output]
format = "tree"
`)
	path := writeFile(t, "custom.edi", "BGN+UNOC:3+A+B+D+R'UNH+1+X'AAA'UNT+3+1'END+1+R'")

	out, err := execute(t, "", "--config", config, "tokenize", path)

	require.NoError(t, err)
	assert.Contains(t, out, "interchange R (UNOC 3) from A to B")
	assert.Contains(t, out, "    AAA")
}

func TestRootCmd_BadConfig(t *testing.T) {
	_, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "version")
	assert.ErrorContains(t, err, "config load failed")
}
