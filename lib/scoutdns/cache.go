package scoutdns

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 512

// answerCache remembers answers by payload. Translations are pure, so an
// entry never goes stale.
type answerCache struct {
	c *lru.Cache[string, Answer]
}

func newAnswerCache(size int) (*answerCache, error) {
	c, err := lru.New[string, Answer](size)
	if err != nil {
		return nil, err
	}
	return &answerCache{c: c}, nil
}

func (a *answerCache) get(payload string) (Answer, bool) {
	if a == nil {
		return Answer{}, false
	}
	ans, ok := a.c.Get(payload)
	if ok {
		log.Debugf("Cache hit: %s", payload)
	} else {
		log.Debugf("Cache miss: %s", payload)
	}
	return ans, ok
}

func (a *answerCache) add(payload string, ans Answer) {
	if a == nil {
		return
	}
	a.c.Add(payload, ans)
}

func (a *answerCache) len() int {
	if a == nil {
		return 0
	}
	return a.c.Len()
}
