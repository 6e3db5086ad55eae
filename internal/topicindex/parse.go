// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package topicindex

import "strings"

const (
	episodePrefix  = "](../episodes/"
	transcriptStem = "/transcript."
)

// ParseEpisodeLink returns the episode identifier referenced by the first
// episode link on line. The accepted grammar is:
//
//	link  = "[" label "](../episodes/" id "/transcript." ext ")"
//	label = one or more characters other than "]"
//	id    = one or more characters other than "/"
//	ext   = one or more characters other than ")" and "/"
//
// Text before and after the link is ignored.
func ParseEpisodeLink(line string) (string, bool) {
	for i := strings.IndexByte(line, '['); i >= 0 && i < len(line); {
		if id, ok := matchLink(line[i:]); ok {
			return id, true
		}
		next := strings.IndexByte(line[i+1:], '[')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return "", false
}

// matchLink matches the link grammar anchored at s[0] == '['.
func matchLink(s string) (string, bool) {
	end := strings.IndexByte(s, ']')
	if end <= 1 {
		return "", false
	}
	rest := s[end:]
	if !strings.HasPrefix(rest, episodePrefix) {
		return "", false
	}
	rest = rest[len(episodePrefix):]

	slash := strings.IndexByte(rest, '/')
	if slash <= 0 {
		return "", false
	}
	id := rest[:slash]
	rest = rest[slash:]
	if !strings.HasPrefix(rest, transcriptStem) {
		return "", false
	}
	rest = rest[len(transcriptStem):]

	closing := strings.IndexByte(rest, ')')
	if closing <= 0 || strings.ContainsRune(rest[:closing], '/') {
		return "", false
	}
	return id, true
}

// ParseEpisodes scans content line by line and returns every episode
// identifier in line order. Repeated links yield repeated identifiers.
func ParseEpisodes(content string) []string {
	var episodes []string
	for _, line := range strings.Split(content, "\n") {
		if id, ok := ParseEpisodeLink(line); ok {
			episodes = append(episodes, id)
		}
	}
	return episodes
}
