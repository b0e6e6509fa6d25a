package progress

import (
	"sort"

	"github.com/abhisek/dsatrack/internal/catalog"
)

// Bucket names for questions without a topic or sub-topic.
const (
	OtherTopic = "Other"
	NoSubTopic = "—"
)

// SubTopicAggregate is one sub-topic bucket within a topic.
type SubTopicAggregate struct {
	SubTopic  string
	Questions []catalog.Question
	Solved    int
	Total     int
	Percent   int
}

// TopicAggregate is one topic with its sub-topic buckets.
type TopicAggregate struct {
	Topic     string
	SubTopics []SubTopicAggregate
	Total     int
	Solved    int
	Percent   int
}

// Complete reports whether every question in the topic is solved.
func (a TopicAggregate) Complete() bool {
	return a.Percent >= 100
}

// GroupByTopic partitions the catalog by topic then sub-topic. Topics keep
// the order in which they first appear in the catalog; sub-topics within a
// topic are sorted.
func GroupByTopic(questions []catalog.Question, solved Solved) []TopicAggregate {
	var order []string
	buckets := make(map[string]map[string][]catalog.Question)

	for _, q := range questions {
		topic := topicKey(q.Topic)
		subs, ok := buckets[topic]
		if !ok {
			subs = make(map[string][]catalog.Question)
			buckets[topic] = subs
			order = append(order, topic)
		}
		sub := subTopicKey(q.SubTopic)
		subs[sub] = append(subs[sub], q)
	}

	aggs := make([]TopicAggregate, 0, len(order))
	for _, topic := range order {
		subs := buckets[topic]
		names := make([]string, 0, len(subs))
		for name := range subs {
			names = append(names, name)
		}
		sort.Strings(names)

		agg := TopicAggregate{Topic: topic}
		var all []catalog.Question
		for _, name := range names {
			qs := subs[name]
			n := countSolved(qs, solved)
			agg.SubTopics = append(agg.SubTopics, SubTopicAggregate{
				SubTopic:  name,
				Questions: qs,
				Solved:    n,
				Total:     len(qs),
				Percent:   Percent(n, len(qs)),
			})
			all = append(all, qs...)
		}
		agg.Total = len(all)
		agg.Solved = countSolved(all, solved)
		agg.Percent = Percent(agg.Solved, agg.Total)
		aggs = append(aggs, agg)
	}
	return aggs
}

// SuggestedNextTopic returns the first topic that is not complete.
func SuggestedNextTopic(aggs []TopicAggregate) (TopicAggregate, bool) {
	for _, a := range aggs {
		if a.Percent < 100 {
			return a, true
		}
	}
	return TopicAggregate{}, false
}

// TopicTile is one cell of the topic map.
type TopicTile struct {
	Topic     string
	Questions []catalog.Question
	Solved    int
	Total     int
	Percent   int
}

// TopicMap groups the catalog by topic, sorted by topic name.
func TopicMap(questions []catalog.Question, solved Solved) []TopicTile {
	byTopic := make(map[string][]catalog.Question)
	for _, q := range questions {
		topic := topicKey(q.Topic)
		byTopic[topic] = append(byTopic[topic], q)
	}

	tiles := make([]TopicTile, 0, len(byTopic))
	for topic, qs := range byTopic {
		n := countSolved(qs, solved)
		tiles = append(tiles, TopicTile{
			Topic:     topic,
			Questions: qs,
			Solved:    n,
			Total:     len(qs),
			Percent:   Percent(n, len(qs)),
		})
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Topic < tiles[j].Topic })
	return tiles
}

func topicKey(topic string) string {
	if blank(topic) {
		return OtherTopic
	}
	return topic
}

func subTopicKey(sub string) string {
	if blank(sub) {
		return NoSubTopic
	}
	return sub
}

// countSolved counts the distinct solved ids among questions. A repeated
// id counts once, the same rule ComputeStats uses.
func countSolved(questions []catalog.Question, solved Solved) int {
	counted := make(map[int]struct{})
	for _, q := range questions {
		if isSolved(solved, q.ID) {
			counted[q.ID] = struct{}{}
		}
	}
	return len(counted)
}
