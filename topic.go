package worldbank

import "encoding/json"

// Topic is a thematic grouping of indicators (Health, Education, ...).
type Topic struct {
	ID   string
	Name string
	Note string
}

type topicWire struct {
	ID         *string `json:"id"`
	Value      string  `json:"value"`
	SourceNote string  `json:"sourceNote"`
}

func mapTopic(raw json.RawMessage) (*Topic, error) {
	var w topicWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}
	id, err := requireID("topic", w.ID)
	if err != nil {
		return nil, err
	}
	return &Topic{ID: id, Name: w.Value, Note: w.SourceNote}, nil
}

// GetTopics lists every topic.
func GetTopics(opts Options) (Page, []Topic, error) {
	page, items, err := fetchPaged("/topics/", opts, baseOptionSet)
	if err != nil {
		return Page{}, nil, err
	}
	topics := make([]Topic, 0, len(items))
	for _, item := range items {
		t, err := mapTopic(item)
		if err != nil {
			return Page{}, nil, err
		}
		topics = append(topics, *t)
	}
	return page, topics, nil
}
