package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simwire/simwire-go/pkg/codec"
	"github.com/simwire/simwire-go/pkg/log"
	"github.com/simwire/simwire-go/pkg/template"
)

func TestCollectorCountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(WithRegistry(reg))

	c.Log(log.Event{Direction: log.DirectionIn, Category: log.CategoryMessage,
		Message: &log.MessageEvent{Name: "TestMessage", Size: 56}})
	c.Log(log.Event{Direction: log.DirectionIn, Category: log.CategoryMessage,
		Message: &log.MessageEvent{Name: "TestMessage", Size: 56}})
	c.Log(log.Event{Direction: log.DirectionOut, Category: log.CategoryMessage,
		Message: &log.MessageEvent{Name: "PacketAck", Size: 5}})
	c.Log(log.Event{Direction: log.DirectionIn, Category: log.CategoryWarning,
		Error: &log.ErrorEventData{Kind: "TrailingBytes"}})
	c.Log(log.Event{Direction: log.DirectionIn, Category: log.CategoryError,
		Error: &log.ErrorEventData{Kind: "BufferUnderrun"}})
	c.Log(log.Event{Direction: log.DirectionOut, Category: log.CategoryError})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.messages.WithLabelValues("IN", "TestMessage")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.messages.WithLabelValues("OUT", "PacketAck")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.warnings.WithLabelValues("IN", "TrailingBytes")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.errors.WithLabelValues("IN", "BufferUnderrun")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.errors.WithLabelValues("OUT", "Unknown")))

	count, err := testutil.GatherAndCount(reg, "simwire_codec_message_size_bytes")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one histogram per direction")
}

func TestCollectorOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(
		WithRegistry(reg),
		WithNamespace("viewer"),
		WithSubsystem("wire"),
		WithConstLabels(prometheus.Labels{"region": "test"}),
		WithSizeBuckets([]float64{10, 100}),
	)
	c.Log(log.Event{Direction: log.DirectionOut, Category: log.CategoryMessage,
		Message: &log.MessageEvent{Name: "StartPingCheck", Size: 6}})

	expected := `
# HELP viewer_wire_messages_total Messages parsed (in) or built (out), by template name
# TYPE viewer_wire_messages_total counter
viewer_wire_messages_total{direction="OUT",message="StartPingCheck",region="test"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "viewer_wire_messages_total"))
}

func TestCollectorAsProtocolLogger(t *testing.T) {
	reg := prometheus.NewRegistry()
	coll := New(WithRegistry(reg))
	c := codec.New(template.MustDefault(), codec.WithProtocolLogger(coll))

	pkt, err := c.Build("PacketAck", codec.BlockData{"Packets": {{"ID": 7}}})
	require.NoError(t, err)
	_, err = c.Parse(pkt.Buffer)
	require.NoError(t, err)
	_, err = c.Parse(pkt.Buffer[:3])
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(coll.messages.WithLabelValues("OUT", "PacketAck")))
	assert.Equal(t, 1.0, testutil.ToFloat64(coll.messages.WithLabelValues("IN", "PacketAck")))
	assert.Equal(t, 1.0, testutil.ToFloat64(coll.errors.WithLabelValues("IN", "BufferUnderrun")))
}
