package reducer

import (
	"fmt"

	"github.com/somlint/somlint/pkg/api"
)

type MockModelLoader struct {
	model *api.Model
	err   error
}

func (m *MockModelLoader) Load() (*api.Model, error) {
	return m.model, m.err
}

func newModel(equations ...string) *api.Model {
	model := &api.Model{Name: "test"}
	for i, equation := range equations {
		r, err := api.ParseEquation(label(i), equation)
		if err != nil {
			panic(err)
		}
		model.Reactions = append(model.Reactions, r)
	}
	return model
}

func label(i int) string {
	return fmt.Sprintf("R%d", i+1)
}

func run(model *api.Model, ignored ...string) (*Result, error) {
	modelReducer := NewModelReducer(&MockModelLoader{model: model}, ignored)
	if err := modelReducer.Load(); err != nil {
		return nil, err
	}
	return modelReducer.Run()
}

func somIdentifiers(result *Result) []string {
	ids := []string{}
	for _, s := range result.Partition.SOMs() {
		ids = append(ids, s.Identifier())
	}
	return ids
}
