package environment_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/sival/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Defaults verifies the documented default constants.
func TestNew_Defaults(t *testing.T) {
	env := environment.New(nil)
	assert.Equal(t, 343.0, env.SpeedOfSound())
	assert.Equal(t, 1.204, env.DensityOfAir())
	assert.Equal(t, environment.DefaultSpeedOfSound, env.DefaultSpeedOfSound())
	assert.Equal(t, environment.DefaultDensityOfAir, env.DefaultDensityOfAir())
	assert.Nil(t, env.DriverResolver())
}

// TestSetAndResetIndependently checks that each reset touches one field only.
func TestSetAndResetIndependently(t *testing.T) {
	env := environment.New(nil)
	env.SetSpeedOfSound(331.3)
	env.SetDensityOfAir(1.293)

	env.ResetSpeedOfSound()
	assert.Equal(t, environment.DefaultSpeedOfSound, env.SpeedOfSound())
	assert.Equal(t, 1.293, env.DensityOfAir(), "density must survive a speed reset")

	env.ResetDensityOfAir()
	assert.Equal(t, environment.DefaultDensityOfAir, env.DensityOfAir())
}

// TestDefaultsMedium checks the fixed Medium value.
func TestDefaultsMedium(t *testing.T) {
	assert.Equal(t, 343.0, environment.Defaults.SpeedOfSound())
	assert.Equal(t, 1.204, environment.Defaults.DensityOfAir())

	var m environment.Medium = environment.New(nil)
	assert.Equal(t, 343.0, m.SpeedOfSound())
}

// TestResolve covers delegation, missing resolver and ErrAccess wrapping.
func TestResolve(t *testing.T) {
	ctx := context.Background()

	_, err := environment.New(nil).Resolve(ctx, "x")
	assert.ErrorIs(t, err, environment.ErrNoResolver)
	assert.ErrorIs(t, err, environment.ErrAccess, "a missing resolver is an access failure")

	ok := environment.ResolverFunc(func(_ context.Context, id string) ([]byte, error) {
		return []byte("record:" + id), nil
	})
	data, err := environment.New(ok).Resolve(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "record:abc", string(data))

	boom := errors.New("disk on fire")
	failing := environment.ResolverFunc(func(context.Context, string) ([]byte, error) {
		return nil, boom
	})
	_, err = environment.New(failing).Resolve(ctx, "abc")
	assert.ErrorIs(t, err, environment.ErrAccess)
	assert.ErrorIs(t, err, boom)
}

// TestConcurrentReadWrite exercises the lock under the race detector.
func TestConcurrentReadWrite(t *testing.T) {
	env := environment.New(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			env.SetSpeedOfSound(340)
			env.ResetSpeedOfSound()
		}()
		go func() {
			defer wg.Done()
			_ = env.SpeedOfSound()
			_ = env.DensityOfAir()
		}()
	}
	wg.Wait()
	assert.Equal(t, environment.DefaultSpeedOfSound, env.SpeedOfSound())
}
