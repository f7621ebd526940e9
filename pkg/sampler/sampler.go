// Package sampler implements the on-device metrics loop used by the phone
// and wearable companions: it polls the device sensors on a fixed cadence,
// derives distance/speed/cadence/acceleration from the raw signals, and
// pushes samples to the performance ingestion endpoint.
package sampler

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	// DefaultStrideLength is an approximation, not a measured calibration.
	DefaultStrideLength = 0.75

	earthGravity = 9.8
)

// Sensors is the black-box producer of periodic scalar readings. Steps is a
// monotonically increasing counter zeroed when the sampler starts; heart
// rate and GPS speed may be unavailable on a given device.
type Sensors interface {
	Steps() int64
	AccelMagnitude() float64
	HeartRate() (float64, bool)
	GPSSpeed() (float64, bool)
}

// Snapshot is one derived-metrics reading, shaped for the ingestion payload.
type Snapshot struct {
	DistanceMeters float64
	Speed          float64
	CadenceSPM     float64
	Acceleration   float64
	Deceleration   float64
	HeartRate      *float64
}

type Options struct {
	PlayerID  int64
	SessionID int64
	// Interval between ticks: 1s for the phone loop, 5s for wearable pushes.
	Interval     time.Duration
	StrideLength float64
	// SubmitEachTick pushes the instantaneous snapshot on every tick (the
	// wearable mode). When false, samples accumulate and StopAndSubmit
	// pushes the averages (the phone mode).
	SubmitEachTick bool
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

type Sampler struct {
	client  *Client
	sensors Sensors
	opts    Options

	mu        sync.Mutex
	startedAt time.Time
	ticks     int64

	sumCadence float64
	sumAccel   float64
	sumDecel   float64
	sumHeart   float64
	heartTicks int64

	lastDistance float64
	lastElapsed  float64
}

func New(client *Client, sensors Sensors, opts Options) *Sampler {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.StrideLength <= 0 {
		opts.StrideLength = DefaultStrideLength
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Sampler{client: client, sensors: sensors, opts: opts}
	s.startedAt = opts.Now()
	return s
}

// Run drives the fixed-interval loop until the context is cancelled. Ticks
// never overlap: each iteration reads, derives, and (in wearable mode)
// pushes before the next fires. A failed push is logged and dropped; the
// next tick simply tries again.
func (s *Sampler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snapshot := s.Tick()
			if s.opts.SubmitEachTick {
				if _, err := s.submit(ctx, snapshot); err != nil {
					log.Printf("sampler push failed: %v", err)
				}
			}
		}
	}
}

// Tick reads the sensors once and returns the derived snapshot computed
// from the totals since start.
func (s *Sampler) Tick() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	steps := s.sensors.Steps()
	elapsed := s.opts.Now().Sub(s.startedAt).Seconds()

	distance := float64(steps) * s.opts.StrideLength
	speed := 0.0
	cadence := 0.0
	if elapsed > 0 {
		speed = distance / elapsed
		cadence = float64(steps) / elapsed * 60
	}
	if gpsSpeed, ok := s.sensors.GPSSpeed(); ok {
		speed = gpsSpeed
	}

	signed := s.sensors.AccelMagnitude() - earthGravity
	accel := 0.0
	decel := 0.0
	if signed >= 0 {
		accel = signed
	} else {
		decel = -signed
	}

	snapshot := Snapshot{
		DistanceMeters: distance,
		Speed:          speed,
		CadenceSPM:     cadence,
		Acceleration:   accel,
		Deceleration:   decel,
	}
	if rate, ok := s.sensors.HeartRate(); ok {
		snapshot.HeartRate = &rate
		s.sumHeart += rate
		s.heartTicks++
	}

	s.ticks++
	s.sumCadence += cadence
	s.sumAccel += accel
	s.sumDecel += decel
	s.lastDistance = distance
	s.lastElapsed = elapsed

	return snapshot
}

// Averages folds the accumulated ticks into one snapshot: running sums
// divided by tick count, and speed as total distance over total elapsed.
func (s *Sampler) Averages() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := Snapshot{DistanceMeters: s.lastDistance}
	if s.ticks > 0 {
		snapshot.CadenceSPM = s.sumCadence / float64(s.ticks)
		snapshot.Acceleration = s.sumAccel / float64(s.ticks)
		snapshot.Deceleration = s.sumDecel / float64(s.ticks)
	}
	if s.lastElapsed > 0 {
		snapshot.Speed = s.lastDistance / s.lastElapsed
	}
	if s.heartTicks > 0 {
		avg := s.sumHeart / float64(s.heartTicks)
		snapshot.HeartRate = &avg
	}
	return snapshot
}

// StopAndSubmit pushes the accumulated averages; the phone app calls this
// on the explicit "stop and submit" action.
func (s *Sampler) StopAndSubmit(ctx context.Context) (int64, error) {
	return s.submit(ctx, s.Averages())
}

func (s *Sampler) submit(ctx context.Context, snapshot Snapshot) (int64, error) {
	payload := PerformancePayload{
		PlayerID:       s.opts.PlayerID,
		DistanceMeters: &snapshot.DistanceMeters,
		Speed:          &snapshot.Speed,
		Acceleration:   &snapshot.Acceleration,
		Deceleration:   &snapshot.Deceleration,
		CadenceSPM:     &snapshot.CadenceSPM,
		HeartRate:      snapshot.HeartRate,
	}
	if s.opts.SessionID > 0 {
		sessionID := s.opts.SessionID
		payload.SessionID = &sessionID
	}
	return s.client.RecordPerformance(ctx, payload)
}
