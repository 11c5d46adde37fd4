package recordstream

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pp "github.com/rmera/poreprofile"
)

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)
	recs := []pp.PerFrameRecord{
		{PathSummary: pp.PathSummary{Timestamp: 0, MinRadius: 1.5}},
		{PathSummary: pp.PathSummary{Timestamp: 1, MinRadius: 1.6}},
	}
	for _, r := range recs {
		require.NoError(t, w.Write(r))
	}
	require.NoError(t, w.Close())

	r, err := NewReader(&buf, false)
	require.NoError(t, err)
	defer r.Close()

	var got []pp.PerFrameRecord
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, rec)
	}
	require.Len(t, got, 2)
	assert.Equal(t, 1.5, got[0].PathSummary.MinRadius)
	assert.Equal(t, 1.6, got[1].PathSummary.MinRadius)
}

func TestGzippedRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	require.NoError(t, w.Write(pp.PerFrameRecord{PathSummary: pp.PathSummary{Timestamp: 5}}))
	require.NoError(t, w.Close())

	r, err := NewReader(&buf, true)
	require.NoError(t, err)
	defer r.Close()

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 5.0, rec.PathSummary.Timestamp)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestMalformedLineErrors(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte("not json\n")), false)
	require.NoError(t, err)
	_, err = r.Next()
	require.Error(t, err)
}
