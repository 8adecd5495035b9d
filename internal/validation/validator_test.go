package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/calculate-sales/internal/types"
)

func TestIsBranchCode(t *testing.T) {
	for _, code := range []string{"000", "001", "999"} {
		assert.True(t, IsBranchCode(code), code)
	}
	for _, code := range []string{"", "01", "0001", "a01", " 01", "01 ", "1.0"} {
		assert.False(t, IsBranchCode(code), code)
	}
}

func TestIsSalesFileName(t *testing.T) {
	assert.True(t, IsSalesFileName("00000001.rcd"))
	assert.True(t, IsSalesFileName("12345678.rcd"))

	for _, name := range []string{
		"0000001.rcd",
		"000000001.rcd",
		"00000001.RCD",
		"00000001xrcd",
		"00000001.rcd.bak",
		"x00000001.rcd",
		"0000000a.rcd",
		"branch.lst",
	} {
		assert.False(t, IsSalesFileName(name), name)
	}
}

func TestSequenceOf(t *testing.T) {
	n, err := SequenceOf("00000042.rcd")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = SequenceOf("42.rcd")
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("0001000")
	require.NoError(t, err)
	assert.Equal(t, "1000", amount.String())

	amount, err = ParseAmount("123456789012345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", amount.String())

	for _, bad := range []string{"", "abc", "-1", "+1", "1.5", " 1", "1 ", "1e3"} {
		_, err := ParseAmount(bad)
		require.Error(t, err, bad)
		assert.Equal(t, UnknownError, KindOf(err), bad)
	}
}

func TestCheckTotalBoundary(t *testing.T) {
	assert.NoError(t, CheckTotal(decimal.NewFromInt(9999999999)))

	err := CheckTotal(decimal.NewFromInt(10000000000))
	require.Error(t, err)
	assert.Equal(t, AmountOverflow, KindOf(err))
}

func files(names ...string) []types.SalesFile {
	out := make([]types.SalesFile, 0, len(names))
	for _, name := range names {
		n, err := SequenceOf(name)
		if err != nil {
			panic(err)
		}
		out = append(out, types.SalesFile{Name: name, Sequence: n})
	}
	return out
}

func TestCheckSequence(t *testing.T) {
	assert.NoError(t, CheckSequence(nil))
	assert.NoError(t, CheckSequence(files("00000007.rcd")))
	assert.NoError(t, CheckSequence(files("00000001.rcd", "00000002.rcd", "00000003.rcd")))
	assert.NoError(t, CheckSequence(files("00000009.rcd", "00000010.rcd")))

	err := CheckSequence(files("00000001.rcd", "00000003.rcd"))
	require.Error(t, err)
	assert.Equal(t, NonSequentialFiles, KindOf(err))

	err = CheckSequence(files("00000001.rcd", "00000002.rcd", "00000002.rcd"))
	assert.Equal(t, NonSequentialFiles, KindOf(err))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, UnknownError, KindOf(errors.New("boom")))
	wrapped := fmt.Errorf("stage: %w", New(InvalidFormat, nil))
	assert.Equal(t, InvalidFormat, KindOf(wrapped))
}

func TestDiagnosticMessages(t *testing.T) {
	assert.Equal(t, "Sales file names are not sequential",
		Diagnostic(New(NonSequentialFiles, nil), LocaleEnglish))
	assert.Equal(t, "00000002.rcd has an invalid branch code",
		Diagnostic(NewForFile(InvalidBranchCode, "00000002.rcd", nil), LocaleEnglish))
	assert.Equal(t, "00000002.rcdのフォーマットが不正です",
		Diagnostic(NewForFile(PerFileFormat, "00000002.rcd", nil), LocaleJapanese))
	assert.Equal(t, "予期せぬエラーが発生しました",
		Diagnostic(errors.New("disk on fire"), LocaleJapanese))
	assert.Equal(t, "Total amount exceeded 10 digits",
		Diagnostic(New(AmountOverflow, nil), "fr"))
}

func TestErrorString(t *testing.T) {
	err := NewForFile(PerFileFormat, "00000001.rcd", errors.New("expected 2 lines, got 3"))
	assert.Equal(t, "00000001.rcd PerFileFormat: expected 2 lines, got 3", err.Error())
	assert.Equal(t, "FileNotFound", New(FileNotFound, nil).Error())
}
