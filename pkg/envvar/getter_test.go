package envvar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Setenv("DATAMAXI_TEST_STRING", "abc")

	v, ok := String("DATAMAXI_TEST_STRING", "def")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	v, ok = String("DATAMAXI_TEST_STRING_UNSET", "def")
	assert.False(t, ok)
	assert.Equal(t, "def", v)
}

func TestDuration(t *testing.T) {
	t.Setenv("DATAMAXI_TEST_DURATION", "3s")
	du, ok := Duration("DATAMAXI_TEST_DURATION", time.Second)
	assert.True(t, ok)
	assert.Equal(t, 3*time.Second, du)

	t.Setenv("DATAMAXI_TEST_DURATION", "three seconds")
	du, ok = Duration("DATAMAXI_TEST_DURATION", time.Second)
	assert.False(t, ok)
	assert.Equal(t, time.Second, du)
}

func TestBool(t *testing.T) {
	t.Setenv("DATAMAXI_TEST_BOOL", "true")
	b, ok := Bool("DATAMAXI_TEST_BOOL")
	assert.True(t, ok)
	assert.True(t, b)

	t.Setenv("DATAMAXI_TEST_BOOL", "yes please")
	b, ok = Bool("DATAMAXI_TEST_BOOL")
	assert.False(t, ok)
	assert.False(t, b)
}

func TestInt(t *testing.T) {
	t.Setenv("DATAMAXI_TEST_INT", "42")
	n, ok := Int("DATAMAXI_TEST_INT")
	assert.True(t, ok)
	assert.Equal(t, 42, n)
}

func TestStringMap(t *testing.T) {
	t.Setenv("DATAMAXI_TEST_MAP", "https=http://proxy:3128, http=http://proxy:3129,broken")
	m, ok := StringMap("DATAMAXI_TEST_MAP")
	assert.True(t, ok)
	assert.Equal(t, map[string]string{
		"https": "http://proxy:3128",
		"http":  "http://proxy:3129",
	}, m)

	t.Setenv("DATAMAXI_TEST_MAP", "")
	m, ok = StringMap("DATAMAXI_TEST_MAP")
	assert.False(t, ok)
	assert.Nil(t, m)
}
