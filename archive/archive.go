// Package archive stores synthesis runs in a bolt database, keyed by
// run name: the accumulator state so later invocations can extend a
// synthesis with new studies, and the rendered summary so finished
// runs can be printed again.
package archive

import (
	"encoding/json"
	"fmt"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/LeonardV/GoricEvSyn/evidence"
)

// log is the global logging variable.
var log = logging.MustGetLogger("archive")

// STATE is the bucket name for accumulator states.
var STATE = []byte("state")

// SUMMARY is the bucket name for run summaries.
var SUMMARY = []byte("summary")

// RunIO provides access to one archived run.
type RunIO struct {
	db  *bolt.DB
	key []byte
}

// NewRunIO creates a RunIO for the run named by key.
func NewRunIO(db *bolt.DB, key string) *RunIO {
	return &RunIO{
		db:  db,
		key: []byte(key),
	}
}

// SaveState saves the accumulator state for the run.
func (r *RunIO) SaveState(state *evidence.AccumulatorState) error {
	data, err := json.Marshal(state)
	if err != nil {
		log.Error("Error serializing accumulator state", err)
		return err
	}
	err = SaveData(r.db, STATE, r.key, data)
	if err != nil {
		log.Error("Error saving accumulator state", err)
	}
	return err
}

// LoadState returns the archived accumulator state for the run, or
// nil if the run has none.
func (r *RunIO) LoadState() (*evidence.AccumulatorState, error) {
	b, err := LoadData(r.db, STATE, r.key)
	if err != nil || b == nil {
		return nil, err
	}

	var state *evidence.AccumulatorState
	err = json.Unmarshal(b, &state)
	if err != nil {
		return nil, err
	}
	if state == nil || len(state.SumLL) == 0 {
		return nil, nil
	}

	log.Noticef("Found archived synthesis state (%s, %d studies)",
		state.Approach, state.Studies)
	return state, nil
}

// SaveSummary saves the JSON-marshalable run summary.
func (r *RunIO) SaveSummary(summary interface{}) error {
	data, err := json.Marshal(summary)
	if err != nil {
		log.Error("Error serializing run summary", err)
		return err
	}
	err = SaveData(r.db, SUMMARY, r.key, data)
	if err != nil {
		log.Error("Error saving run summary", err)
	}
	return err
}

// LoadSummary returns the archived run summary JSON, or an error if
// the run is unknown.
func (r *RunIO) LoadSummary() ([]byte, error) {
	b, err := LoadData(r.db, SUMMARY, r.key)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("no archived run named %q", string(r.key))
	}
	return b, nil
}

// SaveData saves a value in the bolt database.
func SaveData(db *bolt.DB, bucket, key, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}

		err = b.Put(key, data)
		return err
	})
	return err
}

// LoadData loads a value from the bolt database.
func LoadData(db *bolt.DB, bucket, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
