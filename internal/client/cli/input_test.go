package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "lastline", got)
}

func TestGetOptionalText(t *testing.T) {
	var out bytes.Buffer

	got, err := GetOptionalText(rdr("\n"), "Bio", &out)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = GetOptionalText(rdr("-\n"), "Bio", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "", *got)

	got, err = GetOptionalText(rdr("wanderer\n"), "Bio", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "wanderer", *got)
}

func TestGetCommaList(t *testing.T) {
	var out bytes.Buffer

	got, err := GetCommaList(rdr("\n"), "Favourites", &out)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = GetCommaList(rdr("-\n"), "Favourites", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, *got)

	got, err = GetCommaList(rdr("Rome, Lisbon , ,Kyoto\n"), "Favourites", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, []string{"Rome", "Lisbon", "Kyoto"}, *got)
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out, "Enter password")
	require.Error(t, err)
}

func TestGetPassword_ReturnsInput(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("secret"), nil
	}
	var out bytes.Buffer
	pw, err := GetPassword(&out, "Enter password")
	require.NoError(t, err)
	require.Equal(t, "secret", pw)
	require.Contains(t, out.String(), "Enter password")
}
