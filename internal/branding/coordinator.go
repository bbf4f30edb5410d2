package branding

import (
	"context"
	"fmt"
	"os"
	"sync"

	"brandkit/internal/utils"
)

// Getter is the read surface the coordinator fans out over.
type Getter interface {
	GetByType(ctx context.Context, t AssetType) (*Asset, error)
}

// BatchState is the aggregate view of one resolution round. It is replaced
// wholesale each time a round settles; per-type outcomes always carry a
// concrete display value, never a loading placeholder.
type BatchState struct {
	Loading  bool
	Outcomes map[AssetType]Outcome
	// Err is reserved for faults in the coordination itself (a panic escaping
	// a fetch path). Expected per-asset transport failures never set it.
	Err string
}

// Coordinator runs resolution rounds: one concurrent GetByType per configured
// type, every fetch awaited to completion independently so no failure can
// cancel or delay another, each raw result pushed through Resolve. Rounds
// carry a monotonically increasing id; only the newest issued round commits
// to shared state, so an overlapping stale round can never overwrite a fresh
// one.
type Coordinator struct {
	client   Getter
	defaults Defaults
	log      *utils.Logger

	mu    sync.Mutex
	round uint64
	types []AssetType
	state BatchState
}

// NewCoordinator wires a coordinator to a read client, the fallback table,
// and a diagnostics logger. A nil logger falls back to stderr.
func NewCoordinator(client Getter, defaults Defaults, log *utils.Logger) *Coordinator {
	if log == nil {
		log = utils.NewWriterLogger(os.Stderr)
	}
	return &Coordinator{
		client:   client,
		defaults: defaults,
		log:      log,
	}
}

// Resolve runs one round for the given types and returns that round's settled
// state. The shared state observable through State reflects the newest issued
// round only; a round overtaken by a later Resolve/Refresh computes its result,
// logs, and is discarded.
func (c *Coordinator) Resolve(ctx context.Context, types ...AssetType) BatchState {
	c.mu.Lock()
	c.round++
	id := c.round
	c.types = append([]AssetType(nil), types...)
	c.state.Loading = true
	c.mu.Unlock()

	outcomes := make(map[AssetType]Outcome, len(types))
	batchErr := ""
	var outMu sync.Mutex
	var wg sync.WaitGroup

	for _, t := range types {
		wg.Add(1)
		go func(t AssetType) {
			defer wg.Done()
			defer func() {
				// A panic out of a fetch path is a coordination fault, not an
				// expected backend failure: record it on the batch, but still
				// leave the type with a concrete fallback value.
				if r := recover(); r != nil {
					c.log.Error(fmt.Sprintf("resolution round %d: panic fetching %s: %v", id, t, r))
					outMu.Lock()
					batchErr = fmt.Sprintf("panic fetching %s: %v", t, r)
					outcomes[t] = Resolve(t, FetchFailed(fmt.Errorf("panic: %v", r)), c.defaults)
					outMu.Unlock()
				}
			}()

			out := Resolve(t, c.fetch(ctx, t), c.defaults)
			if out.Err != nil {
				// Recovered locally into the fallback; diagnostic only.
				c.log.Warn(fmt.Sprintf("resolution round %d: %s fetch failed, using fallback: %v", id, t, out.Err))
			}
			outMu.Lock()
			outcomes[t] = out
			outMu.Unlock()
		}(t)
	}
	wg.Wait()

	return c.commit(id, BatchState{Outcomes: outcomes, Err: batchErr})
}

// Refresh re-runs the last configured type set, or the full set if Resolve
// was never called.
func (c *Coordinator) Refresh(ctx context.Context) BatchState {
	c.mu.Lock()
	types := append([]AssetType(nil), c.types...)
	c.mu.Unlock()
	if len(types) == 0 {
		types = AllTypes()
	}
	return c.Resolve(ctx, types...)
}

// State returns a copy of the committed batch state.
func (c *Coordinator) State() BatchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyState(c.state)
}

func (c *Coordinator) fetch(ctx context.Context, t AssetType) FetchResult {
	a, err := c.client.GetByType(ctx, t)
	if err != nil {
		return FetchFailed(err)
	}
	if a == nil {
		return FetchedAbsent()
	}
	return FetchedValue(a)
}

func (c *Coordinator) commit(id uint64, st BatchState) BatchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id != c.round {
		// Overtaken by a newer round; the newer one owns the shared state.
		c.log.Info(fmt.Sprintf("resolution round %d: stale, discarding result", id))
		return st
	}
	c.state = st
	return copyState(c.state)
}

func copyState(st BatchState) BatchState {
	out := BatchState{Loading: st.Loading, Err: st.Err}
	if st.Outcomes != nil {
		out.Outcomes = make(map[AssetType]Outcome, len(st.Outcomes))
		for t, o := range st.Outcomes {
			out.Outcomes[t] = o
		}
	}
	return out
}
