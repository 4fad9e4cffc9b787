package pause

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPause_ResolvesNoEarlierThanDuration(t *testing.T) {
	durations := []time.Duration{0, 10 * time.Millisecond, 50 * time.Millisecond}

	for _, d := range durations {
		t.Run(d.String(), func(t *testing.T) {
			start := time.Now()
			_, err := Pause(d).Await(context.Background())
			require.NoError(t, err)
			assert.GreaterOrEqual(t, time.Since(start), d)
		})
	}
}

func TestPause_NegativeFiresImmediately(t *testing.T) {
	start := time.Now()
	_, err := Pause(-time.Second).Await(context.Background())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPause_ResolvesOnce(t *testing.T) {
	p := Pause(20 * time.Millisecond)

	_, err := p.Await(context.Background())
	require.NoError(t, err)

	// a settled promise hands back the same result without waiting again
	start := time.Now()
	_, err = p.Await(context.Background())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 20*time.Millisecond)
}

func TestDemo(t *testing.T) {
	var out bytes.Buffer

	err := Demo(context.Background(), 20*time.Millisecond, &out)
	require.NoError(t, err)
	assert.Equal(t, "Starting pause...\nPause completed after 0.02 seconds\n", out.String())
}

func TestDemo_DefaultDurationWording(t *testing.T) {
	if testing.Short() {
		t.Skip("waits two seconds")
	}
	var out bytes.Buffer

	require.NoError(t, Demo(context.Background(), 2*time.Second, &out))
	assert.Contains(t, out.String(), "Pause completed after 2 seconds")
}
