package field_test

import (
	"regexp"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formz/pkg/field"
)

var cachedText = field.NewCachedKind("cached_text", notBlank)

func countingRule(calls *atomic.Int32) field.Rule[string, validationError] {
	return func(v string) *validationError {
		calls.Add(1)
		return notBlank(v)
	}
}

func TestCachedField_Error(t *testing.T) {
	t.Parallel()

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		f := cachedText.Pure("")
		require.NotNil(t, f.Error())
		assert.Equal(t, errBlank, *f.Error())
		assert.False(t, f.IsValid())
		assert.True(t, f.IsNotValid())
	})

	t.Run("valid value", func(t *testing.T) {
		t.Parallel()
		f := cachedText.Pure("Valid Input")
		assert.Nil(t, f.Error())
		assert.True(t, f.IsValid())
	})

	t.Run("same pointer across calls", func(t *testing.T) {
		t.Parallel()
		f := cachedText.Dirty("")
		first := f.Error()
		second := f.Error()
		assert.Same(t, first, second)
		assert.Same(t, first, f.DisplayError())
	})
}

func TestCachedField_RuleRunsOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	f := field.NewCachedDirty("", countingRule(&calls))

	for range 5 {
		_ = f.Error()
		_ = f.IsValid()
		_ = f.IsNotValid()
		_ = f.DisplayError()
	}
	assert.Equal(t, int32(1), calls.Load())

	// copies share the cache
	cp := f
	_ = cp.Error()
	assert.Equal(t, int32(1), calls.Load())

	// edits get a fresh cache
	edited := f.WithValue("John")
	assert.True(t, edited.IsValid())
	assert.Equal(t, int32(2), calls.Load())
}

func TestCachedField_ConcurrentFirstAccess(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	f := field.NewCachedDirty("", countingRule(&calls))

	const readers = 64
	results := make([]*validationError, readers)

	var wg sync.WaitGroup
	wg.Add(readers)
	for i := range readers {
		go func() {
			defer wg.Done()
			results[i] = f.Error()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestCachedField_MatchesField(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", " ", "John", "a@b.com"} {
		for _, pure := range []bool{true, false} {
			plain := text.New(v, pure)
			cached := cachedText.New(v, pure)
			assert.Equal(t, plain.IsValid(), cached.IsValid())
			assert.Equal(t, plain.Error(), cached.Error())
			assert.Equal(t, plain.DisplayError(), cached.DisplayError())
			assert.Equal(t, plain.IsPure(), cached.IsPure())
			assert.Equal(t, plain.Hash(), cached.Hash())
		}
	}
}

func TestCachedField_Equality(t *testing.T) {
	t.Parallel()

	a := cachedText.New("Test", false)
	b := cachedText.New("Test", false)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	c := cachedText.New("Test2", false)
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())

	// evaluated and unevaluated instances are still equal
	_ = a.Error()
	assert.True(t, a.Equal(b))
}

func TestCachedField_ZeroValue(t *testing.T) {
	t.Parallel()

	var f field.CachedField[string, validationError]
	assert.True(t, f.IsValid())
	assert.True(t, f.IsPure(), "zero value defaults to pure")
	assert.Nil(t, f.DisplayError())
	assert.True(t, f.Equal(field.NewCached[string, validationError]("", nil)))
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func emailRule(v string) *validationError {
	if !emailPattern.MatchString(v) {
		return field.Invalid(errBlank)
	}
	return nil
}

func BenchmarkField_Error(b *testing.B) {
	f := field.NewDirty("someone@example.com", emailRule)
	b.ResetTimer()
	for b.Loop() {
		_ = f.IsValid()
		_ = f.DisplayError()
	}
}

func BenchmarkCachedField_Error(b *testing.B) {
	f := field.NewCachedDirty("someone@example.com", emailRule)
	b.ResetTimer()
	for b.Loop() {
		_ = f.IsValid()
		_ = f.DisplayError()
	}
}
