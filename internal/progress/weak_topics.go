package progress

import (
	"sort"
	"strings"

	"github.com/vytor/lecturedeck/internal/models"
)

const (
	DefaultTopic  = "General Topic"
	MaxWeakTopics = 10
)

// TopicOf returns the topic of a source reference: the text before the first
// comma, trimmed.
func TopicOf(sourceRef string) string {
	topic, _, _ := strings.Cut(sourceRef, ",")
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return DefaultTopic
	}
	return topic
}

// RankWeakTopics groups attempts by topic and returns at most ten topics,
// weakest first. Topics with equal accuracy keep the order they were first seen.
func RankWeakTopics(attempts []models.AttemptWithSource) []models.WeakTopic {
	topics := []models.WeakTopic{}
	index := map[string]int{}

	for _, a := range attempts {
		topic := TopicOf(a.SourceRef)
		i, ok := index[topic]
		if !ok {
			i = len(topics)
			index[topic] = i
			topics = append(topics, models.WeakTopic{Topic: topic})
		}
		topics[i].Total++
		if a.IsCorrect {
			topics[i].Correct++
		}
	}

	for i := range topics {
		topics[i].Accuracy = percent(topics[i].Correct, topics[i].Total)
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Accuracy < topics[j].Accuracy
	})

	if len(topics) > MaxWeakTopics {
		topics = topics[:MaxWeakTopics]
	}
	return topics
}
