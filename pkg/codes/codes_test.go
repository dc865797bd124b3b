package codes

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func TestProjectCode_Format(t *testing.T) {
	gen := NewWithSource(rand.New(rand.NewPCG(1, 2)), fixedNow)
	pattern := regexp.MustCompile(`^FDL-[` + ProjectAlphabet + `]{4}-2026$`)

	for i := 0; i < 100; i++ {
		code := gen.ProjectCode()
		require.Regexp(t, pattern, code)
	}
}

func TestProjectCode_ExcludesAmbiguousCharacters(t *testing.T) {
	assert.NotContains(t, ProjectAlphabet, "0")
	assert.NotContains(t, ProjectAlphabet, "O")
	assert.NotContains(t, ProjectAlphabet, "1")
	assert.NotContains(t, ProjectAlphabet, "I")
}

func TestProjectCode_UsesGeneratorYear(t *testing.T) {
	gen := NewWithSource(rand.New(rand.NewPCG(7, 7)), func() time.Time {
		return time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC)
	})

	assert.True(t, strings.HasSuffix(gen.ProjectCode(), "-2031"))
}

func TestAppointmentCode_Range(t *testing.T) {
	gen := NewWithSource(rand.New(rand.NewPCG(3, 4)), fixedNow)

	for i := 0; i < 200; i++ {
		code := gen.AppointmentCode()
		require.True(t, strings.HasPrefix(code, "APP-"), "code %q", code)

		n, err := strconv.Atoi(strings.TrimPrefix(code, "APP-"))
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1000)
		require.LessOrEqual(t, n, 9999)
	}
}

func TestNewWithSource_Deterministic(t *testing.T) {
	a := NewWithSource(rand.New(rand.NewPCG(5, 6)), fixedNow)
	b := NewWithSource(rand.New(rand.NewPCG(5, 6)), fixedNow)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.ProjectCode(), b.ProjectCode())
	}
}
