package instance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/geom"
	"github.com/katalvlaran/heldkarp/instance"
	"github.com/katalvlaran/heldkarp/tsp"
)

const citiesYAML = `
name: demo
cities:
  - {name: depot, x: 0, y: 0}
  - {x: 3, y: 4}
  - {name: far, x: 6, y: 0}
`

func TestParse_Cities(t *testing.T) {
	inst, err := instance.Parse([]byte(citiesYAML))
	require.NoError(t, err)
	require.Equal(t, "demo", inst.Name)
	require.Equal(t, 3, inst.Len())
	require.True(t, inst.HasCoordinates())

	pts, err := inst.Points()
	require.NoError(t, err)
	require.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 6, Y: 0}}, pts)

	assert.Equal(t, "depot", inst.Label(0))
	assert.Equal(t, "1", inst.Label(1))
	assert.Equal(t, "far", inst.Label(2))
	assert.Equal(t, "7", inst.Label(7))

	m, err := inst.Matrix()
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

func TestParse_DistancesJSON(t *testing.T) {
	inst, err := instance.Parse([]byte(`{"name": "one-way", "distances": [[0, 1, 9], [9, 0, 1], [1, 9, 0]]}`))
	require.NoError(t, err)
	require.Equal(t, 3, inst.Len())
	require.False(t, inst.HasCoordinates())

	_, err = inst.Points()
	require.ErrorIs(t, err, instance.ErrNoCoordinates)

	m, err := inst.Matrix()
	require.NoError(t, err)
	v, _ := m.At(1, 0)
	require.Equal(t, 9.0, v)
}

func TestParse_Errors(t *testing.T) {
	_, err := instance.Parse([]byte("name: nothing\n"))
	require.ErrorIs(t, err, instance.ErrEmptyInstance)

	_, err = instance.Parse([]byte("cities: [{x: 0, y: 0}]\ndistances: [[0]]\n"))
	require.ErrorIs(t, err, instance.ErrAmbiguousInstance)

	_, err = instance.Parse([]byte("cities: {x: [oops\n"))
	require.Error(t, err)

	for _, doc := range []string{
		"distances: [[0, 1], [1]]\n",
		"distances: [[0, 1, 2], [1, 0, 2]]\n",
	} {
		inst, err := instance.Parse([]byte(doc))
		require.NoError(t, err, "shape is checked when the matrix is built")
		_, err = inst.Matrix()
		require.ErrorIs(t, err, tsp.ErrNonSquare, doc)
		require.ErrorIs(t, err, tsp.ErrInvalidInput, doc)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(citiesYAML), 0o600))

	inst, err := instance.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, inst.Len())

	_, err = instance.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParsePoint(t *testing.T) {
	p, err := instance.ParsePoint("2,3")
	require.NoError(t, err)
	require.Equal(t, geom.Point{X: 2, Y: 3}, p)

	p, err = instance.ParsePoint(" -1.5 , 4e1 ")
	require.NoError(t, err)
	require.Equal(t, geom.Point{X: -1.5, Y: 40}, p)

	for _, bad := range []string{"", "1", "a,2", "1,b", "1,2,3"} {
		_, err = instance.ParsePoint(bad)
		require.ErrorIs(t, err, instance.ErrBadPoint, "input %q", bad)
	}
}

func TestParsePointsAndFromPoints(t *testing.T) {
	pts, err := instance.ParsePoints([]string{"0,0", "0,1"})
	require.NoError(t, err)

	inst, err := instance.FromPoints(pts)
	require.NoError(t, err)
	require.Equal(t, 2, inst.Len())

	_, err = instance.FromPoints(nil)
	require.ErrorIs(t, err, instance.ErrEmptyInstance)

	_, err = instance.ParsePoints([]string{"0,0", "x"})
	require.ErrorIs(t, err, instance.ErrBadPoint)
}
