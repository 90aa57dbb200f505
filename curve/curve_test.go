package curve_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ex-Nihilo-0-1/HW-1/curve"
	"github.com/Ex-Nihilo-0-1/HW-1/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func examples(t *testing.T, n int) dataset.Set {
	t.Helper()
	var s dataset.Set
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("a=%d,b=%d,Class=%d", i%2, (i/2)%2, i%2)
		e, err := dataset.ParseExample(strings.Split(row, ",")...)
		require.NoError(t, err)
		s = append(s, e)
	}
	return s
}

func TestRun(t *testing.T) {
	cfg := curve.Config{Sizes: []int{4, 10, 20}, Runs: 5, Seed: 7}
	points, err := curve.Run(context.Background(), examples(t, 30), "0", cfg)
	require.NoError(t, err)
	require.Len(t, points, 3)
	for i, p := range points {
		assert.Equal(t, cfg.Sizes[i], p.Size)
		assert.True(t, p.Unpruned >= 0 && p.Unpruned <= 1)
		assert.True(t, p.Pruned >= 0 && p.Pruned <= 1)
	}
	assert.Equal(t, 1.0, points[2].Unpruned, "a separates the classes")

	again, err := curve.Run(context.Background(), examples(t, 30), "0", cfg)
	require.NoError(t, err)
	assert.Equal(t, points, again, "same seed, same curve")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, curve.DefaultConfig().Validate(300))
	assert.Error(t, curve.DefaultConfig().Validate(100), "sizes beyond the set")
	assert.Error(t, curve.Config{Runs: 1}.Validate(10))
	assert.Error(t, curve.Config{Sizes: []int{2}}.Validate(10))

	_, err := curve.Run(context.Background(), examples(t, 5), "0", curve.Config{Sizes: []int{5}, Runs: 1})
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := curve.Run(ctx, examples(t, 10), "0", curve.Config{Sizes: []int{5}, Runs: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := curve.WriteCSV(&buf, []curve.Point{{Size: 10, Unpruned: 0.5, Pruned: 0.75}})
	require.NoError(t, err)
	assert.Equal(t, "size,unpruned,pruned\n10,0.5000,0.7500\n", buf.String())
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")
	err := curve.WritePNG(path, []curve.Point{{Size: 10, Unpruned: 0.5, Pruned: 0.75}, {Size: 20, Unpruned: 0.8, Pruned: 0.9}})
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
