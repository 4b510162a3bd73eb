package service

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/zunnuran/discord-bot/internal/domain"
	"github.com/zunnuran/discord-bot/internal/domain/contract"
	"github.com/zunnuran/discord-bot/internal/domain/entity"
)

const forwardHeader = "**Forwarded Message**\n-----\n"

var nonWordChars = regexp.MustCompile(`\W+`)

// forwarderIndex is an immutable snapshot of active rules keyed by source
// location. Reload builds a fresh index and swaps the pointer; readers never
// observe a partially built map.
type forwarderIndex struct {
	rules map[string][]*entity.ActiveForwarder
}

func channelKey(platformID string) string { return "channel:" + platformID }
func threadKey(platformID string) string  { return "thread:" + platformID }

// forwarderService evaluates inbound guild messages against the cached rules
// and copies matches to their destinations.
type forwarderService struct {
	dm      contract.DataManager
	gateway contract.Gateway
	index   atomic.Pointer[forwarderIndex]
	nowFn   func() time.Time
}

func newForwarder(dm contract.DataManager, gateway contract.Gateway) *forwarderService {
	s := &forwarderService{
		dm:      dm,
		gateway: gateway,
		nowFn:   time.Now,
	}
	s.index.Store(&forwarderIndex{rules: map[string][]*entity.ActiveForwarder{}})
	return s
}

// Load rebuilds the rule index from the store and installs it atomically.
func (s *forwarderService) Load() error {
	forwarders, err := s.dm.Forwarder().GetActive()
	if err != nil {
		return fmt.Errorf("failed to load active forwarders: %w", err)
	}

	idx := &forwarderIndex{rules: make(map[string][]*entity.ActiveForwarder)}
	for _, f := range forwarders {
		if len(f.Keywords) == 0 {
			// The API boundary prevents empty keyword lists; skip rather
			// than match everything if one slips through.
			log.Printf("Forwarder %d has no keywords, skipping", f.ID)
			continue
		}

		if f.SourceThreadID != "" {
			key := threadKey(f.SourceThreadID)
			idx.rules[key] = append(idx.rules[key], f)

			// Messages in the parent channel proper must not hit
			// thread-scoped rules, so the channel entry has to exist even
			// when empty.
			parentKey := channelKey(f.SourceChannelPlatformID)
			if _, ok := idx.rules[parentKey]; !ok {
				idx.rules[parentKey] = nil
			}
			continue
		}

		key := channelKey(f.SourceChannelPlatformID)
		idx.rules[key] = append(idx.rules[key], f)
	}

	s.index.Store(idx)
	log.Printf("Forwarder cache loaded: %d rules across %d locations", len(forwarders), len(idx.rules))
	return nil
}

// HandleMessage evaluates one inbound message. Bot-authored messages and DMs
// are dropped before any rule runs.
func (s *forwarderService) HandleMessage(msg contract.InboundMessage) {
	if msg.AuthorIsBot || msg.GuildID == "" {
		return
	}

	idx := s.index.Load()

	var candidates []*entity.ActiveForwarder
	if msg.ChannelIsThread {
		candidates = append(candidates, idx.rules[threadKey(msg.ChannelID)]...)
		candidates = append(candidates, idx.rules[channelKey(msg.ParentChannelID)]...)
	} else {
		candidates = idx.rules[channelKey(msg.ChannelID)]
	}

	for _, rule := range candidates {
		keyword, ok := matchKeyword(msg.Content, rule.Keywords, rule.MatchType)
		if !ok {
			continue
		}
		s.forward(rule, msg.Content, keyword)
	}
}

// matchKeyword returns the first keyword that matches the message, honoring
// the rule's match mode. Matching is case-insensitive.
func matchKeyword(content string, keywords []string, matchType string) (string, bool) {
	lowered := strings.ToLower(content)

	var messageTokens []string
	if matchType == domain.MatchExact {
		messageTokens = tokenize(lowered)
	}

	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}

		switch matchType {
		case domain.MatchExact:
			if containsTokenSequence(messageTokens, tokenize(strings.ToLower(keyword))) {
				return keyword, true
			}
		default:
			if strings.Contains(lowered, strings.ToLower(keyword)) {
				return keyword, true
			}
		}
	}

	return "", false
}

// tokenize replaces non-word characters with spaces and splits, so "ALERT!"
// and "alert" compare equal in exact mode.
func tokenize(s string) []string {
	return strings.Fields(nonWordChars.ReplaceAllString(s, " "))
}

// containsTokenSequence reports whether needle appears as a contiguous
// subsequence of haystack.
func containsTokenSequence(haystack, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}

	for i := 0; i+len(needle) <= len(haystack); i++ {
		matched := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

func (s *forwarderService) forward(rule *entity.ActiveForwarder, content, keyword string) {
	target := rule.DestinationChannelPlatformID
	if rule.DestinationThreadID != "" {
		target = rule.DestinationThreadID
	}

	logRow := &entity.ForwarderLog{
		ForwarderID:     rule.ID,
		ForwardedAt:     s.nowFn().UTC(),
		OriginalMessage: truncate(content, domain.MaxLoggedMessageLen),
		MatchedKeyword:  keyword,
		Status:          domain.StatusSuccess,
	}

	if target == "" {
		logRow.Status = domain.StatusFailed
		logRow.Error = "destination channel not found/accessible"
	} else if err := s.gateway.SendToChannel(target, forwardHeader+content); err != nil {
		logRow.Status = domain.StatusFailed
		logRow.Error = err.Error()
		log.Printf("Forwarder %d failed to deliver to %s: %v", rule.ID, target, err)
	}

	if err := s.dm.Forwarder().CreateLog(logRow); err != nil {
		log.Printf("Failed to write forwarder log for rule %d: %v", rule.ID, err)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
