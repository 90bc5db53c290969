package models

import (
	"encoding/json"
	"fmt"
)

// AnswerSet is the normalized form of a submitted answer. Clients send
// either a bare choice index or a list of choice indices; the shape is
// resolved here at the boundary so scoring never branches on raw JSON.
type AnswerSet struct {
	Single   int
	Multiple []int
	IsMulti  bool
}

func SingleAnswer(index int) AnswerSet {
	return AnswerSet{Single: index}
}

func MultipleAnswer(indices ...int) AnswerSet {
	return AnswerSet{Multiple: indices, IsMulti: true}
}

func (a *AnswerSet) UnmarshalJSON(data []byte) error {
	var index int
	if err := json.Unmarshal(data, &index); err == nil {
		a.Single = index
		a.Multiple = nil
		a.IsMulti = false
		return nil
	}
	var indices []int
	if err := json.Unmarshal(data, &indices); err == nil {
		a.Single = 0
		a.Multiple = indices
		a.IsMulti = true
		return nil
	}
	return fmt.Errorf("answer must be a choice index or a list of choice indices")
}

func (a AnswerSet) MarshalJSON() ([]byte, error) {
	if a.IsMulti {
		if a.Multiple == nil {
			return json.Marshal([]int{})
		}
		return json.Marshal(a.Multiple)
	}
	return json.Marshal(a.Single)
}

// Stored converts the answer to the shape persisted inside QuizResult.
func (a AnswerSet) Stored() StoredAnswer {
	if a.IsMulti {
		return StoredAnswer{Mode: "multiple", Indices: append([]int{}, a.Multiple...)}
	}
	return StoredAnswer{Mode: "single", Indices: []int{a.Single}}
}

type StoredAnswer struct {
	Mode    string `bson:"mode" json:"mode"`
	Indices []int  `bson:"indices" json:"indices"`
}
