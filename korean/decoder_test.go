package korean_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/fwojciec/krxlist"
	krxkorean "github.com/fwojciec/krxlist/korean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
)

func encode(t *testing.T, s string) []byte {
	t.Helper()

	b, err := korean.EUCKR.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestDecoder_DecodeLines(t *testing.T) {
	t.Parallel()

	t.Run("decodes CP949 lines keeping terminators", func(t *testing.T) {
		t.Parallel()

		src := encode(t, "005930   KR7005930003삼성전자\n000660   KR7000660001SK하이닉스\n")

		lines, err := krxkorean.NewDecoder().DecodeLines(bytes.NewReader(src))

		require.NoError(t, err)
		assert.Equal(t, []string{
			"005930   KR7005930003삼성전자\n",
			"000660   KR7000660001SK하이닉스\n",
		}, lines)
	})

	t.Run("decodes UHC extension characters", func(t *testing.T) {
		t.Parallel()

		// 똠 is outside KS X 1001 and only encodable in CP949.
		src := encode(t, "똠양꿍\n")

		lines, err := krxkorean.NewDecoder().DecodeLines(bytes.NewReader(src))

		require.NoError(t, err)
		assert.Equal(t, []string{"똠양꿍\n"}, lines)
	})

	t.Run("normalises CRLF", func(t *testing.T) {
		t.Parallel()

		src := encode(t, "카카오\r\n네이버\r\n")

		lines, err := krxkorean.NewDecoder().DecodeLines(bytes.NewReader(src))

		require.NoError(t, err)
		assert.Equal(t, []string{"카카오\n", "네이버\n"}, lines)
	})

	t.Run("keeps final line without terminator", func(t *testing.T) {
		t.Parallel()

		src := encode(t, "첫째\n둘째")

		lines, err := krxkorean.NewDecoder().DecodeLines(bytes.NewReader(src))

		require.NoError(t, err)
		assert.Equal(t, []string{"첫째\n", "둘째"}, lines)
	})

	t.Run("returns no lines for empty input", func(t *testing.T) {
		t.Parallel()

		lines, err := krxkorean.NewDecoder().DecodeLines(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("fails on invalid byte sequence", func(t *testing.T) {
		t.Parallel()

		src := append(encode(t, "정상\n"), 0xFF, 0xFF, '\n')

		_, err := krxkorean.NewDecoder().DecodeLines(bytes.NewReader(src))

		require.Error(t, err)
		assert.Equal(t, krxlist.EINVALID, krxlist.ErrorCode(err))
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("fails on truncated trailing character", func(t *testing.T) {
		t.Parallel()

		src := encode(t, "삼성")
		src = src[:len(src)-1]

		_, err := krxkorean.NewDecoder().DecodeLines(bytes.NewReader(src))

		require.Error(t, err)
		assert.Equal(t, krxlist.EINVALID, krxlist.ErrorCode(err))
	})

	t.Run("propagates read errors", func(t *testing.T) {
		t.Parallel()

		readErr := errors.New("disk failure")

		_, err := krxkorean.NewDecoder().DecodeLines(iotest.ErrReader(readErr))

		require.ErrorIs(t, err, readErr)
	})
}
