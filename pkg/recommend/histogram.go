package recommend

import "github.com/goccy/go-json"

type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Histogram counts keys and remembers the order in which they first
// appeared, so iteration and favorite selection are reproducible.
type Histogram struct {
	buckets []Bucket
	index   map[string]int
}

func NewHistogram(keys ...string) Histogram {
	histogram := Histogram{}
	for _, key := range keys {
		histogram.ensure(key)
	}

	return histogram
}

func (h *Histogram) ensure(key string) int {
	if h.index == nil {
		h.index = make(map[string]int)
	}

	position, found := h.index[key]
	if !found {
		position = len(h.buckets)
		h.index[key] = position
		h.buckets = append(h.buckets, Bucket{Key: key})
	}

	return position
}

func (h *Histogram) Add(key string) int {
	position := h.ensure(key)
	h.buckets[position].Count++

	return h.buckets[position].Count
}

func (h Histogram) Count(key string) int {
	position, found := h.index[key]
	if !found {
		return 0
	}

	return h.buckets[position].Count
}

func (h Histogram) Len() int {
	return len(h.buckets)
}

func (h Histogram) Total() int {
	total := 0
	for _, bucket := range h.buckets {
		total += bucket.Count
	}

	return total
}

func (h Histogram) Buckets() []Bucket {
	buckets := make([]Bucket, len(h.buckets))
	copy(buckets, h.buckets)

	return buckets
}

// Mode returns the first key, in insertion order, holding the highest
// count. Buckets with a zero count never win.
func (h Histogram) Mode() (string, bool) {
	var (
		mode     string
		maxCount int
	)

	for _, bucket := range h.buckets {
		if bucket.Count > maxCount {
			maxCount = bucket.Count
			mode = bucket.Key
		}
	}

	return mode, maxCount > 0
}

func (h Histogram) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Buckets())
}
