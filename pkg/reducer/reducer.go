package reducer

import (
	"github.com/sirupsen/logrus"
	"github.com/somlint/somlint/pkg/api"
	"github.com/somlint/somlint/pkg/som"
)

// ReactionState follows one model reaction through the analysis.
type ReactionState struct {
	Original *api.Reaction
	// Current is Original, or the latest reduced form of it.
	Current *api.Reaction
	// Merged is set when the reaction, possibly after reduction, joined two SOMs.
	Merged bool
}

func (s *ReactionState) Reduced() bool {
	return s.Current != s.Original
}

type Result struct {
	Model     *api.Model
	Partition *som.Partition
	// Reactions holds all analysed reactions in model order.
	Reactions []*ReactionState
}

type ModelReducer struct {
	model   *api.Model
	ignored map[string]struct{}
	loader  ModelLoader
}

func (r *ModelReducer) Load() error {
	model, err := r.loader.Load()
	if err != nil {
		return err
	}
	r.model = model
	return nil
}

func (r *ModelReducer) ReactionCount() int {
	return len(r.model.Reactions)
}

// Run partitions the molecules of the loaded model. Every 1-1 reaction
// merges SOMs, then every n-n reaction is reduced against the partition.
// A reaction which reduces to 1-1 merges SOMs as well, and reduction is
// repeated until the partition stops changing.
func (r *ModelReducer) Run() (*Result, error) {
	result := &Result{
		Model:     r.model,
		Partition: som.NewPartition(r.model.Molecules()),
	}
	logrus.Infof("initialized %d SOMs", result.Partition.Len())

	for _, reaction := range r.model.Reactions {
		if _, exists := r.ignored[reaction.Label]; exists {
			logrus.Infof("ignoring reaction %s", reaction.Label)
			continue
		}
		result.Reactions = append(result.Reactions, &ReactionState{Original: reaction, Current: reaction})
	}

	for _, state := range result.Reactions {
		if state.Current.Category != api.ReactionUniUni {
			continue
		}
		if _, err := result.Partition.Merge(state.Current); err != nil {
			return nil, err
		}
		state.Merged = true
	}
	logrus.Infof("merged uni-uni reactions into %d SOMs", result.Partition.Len())

	for pass := 1; ; pass++ {
		merged := false
		for _, state := range result.Reactions {
			if state.Current.Category != api.ReactionMultiMulti {
				continue
			}
			reduced, ok := result.Partition.Reduce(state.Current)
			if !ok {
				continue
			}
			logrus.Debugf("pass %d: reduced %s to %s", pass, state.Current, reduced)
			state.Current = reduced
			if reduced.Category != api.ReactionUniUni {
				continue
			}
			if _, err := result.Partition.Merge(reduced); err != nil {
				return nil, err
			}
			state.Merged = true
			merged = true
		}
		if !merged {
			break
		}
	}

	count := 0
	for _, state := range result.Reactions {
		if state.Reduced() {
			count++
		}
	}
	logrus.Infof("reduced %d reactions, %d SOMs remain", count, result.Partition.Len())
	return result, nil
}

func NewModelReducer(loader ModelLoader, ignored []string) *ModelReducer {
	ignoredSet := make(map[string]struct{}, len(ignored))
	for _, label := range ignored {
		ignoredSet[label] = struct{}{}
	}
	return &ModelReducer{
		ignored: ignoredSet,
		loader:  loader,
	}
}

// Resolve loads a model file and runs the partitioning on it.
func Resolve(path string, ignored []string) (*Result, error) {
	modelReducer := NewModelReducer(NewFileLoader(path), ignored)
	logrus.Infof("Loading model %s.", path)
	if err := modelReducer.Load(); err != nil {
		return nil, err
	}
	logrus.Infof("loaded %d reactions", modelReducer.ReactionCount())
	return modelReducer.Run()
}
