package sink

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/kilianp07/plugkit/core/model"
	coresink "github.com/kilianp07/plugkit/core/sink"
	"github.com/kilianp07/plugkit/infra/logger"
)

// InfluxSink writes events to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink if the health check fails, so a broken endpoint does not take the
// pipeline down.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coresink.Sink {
	s := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := s.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			s.log.Errorf("influx health check error: %v", err)
		} else {
			s.log.Errorf("influx health status: %s", health.Status)
		}
		s.client.Close()
		return coresink.NopSink{}
	}
	return s
}

// Record writes the event as a point tagged with its name and ID.
func (s *InfluxSink) Record(ev model.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("pipeline_event").
		AddTag("event", ev.Name).
		AddTag("event_id", ev.ID).
		SetTime(ev.Time)
	for k, v := range ev.Fields {
		p = p.AddField(k, v)
	}
	if len(ev.Fields) == 0 {
		p = p.AddField("count", 1)
	}
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying HTTP client.
func (s *InfluxSink) Close() error {
	s.client.Close()
	return nil
}
