package genvid

// fieldRule names one known response shape and the path to its value.
// Rules are probed in order and the first non-empty string match wins, so
// supporting a new provider format is a matter of appending a rule.
type fieldRule struct {
	name string
	path []string
}

func (r fieldRule) extract(body map[string]any) (string, bool) {
	node := body
	for i, key := range r.path {
		if i == len(r.path)-1 {
			s, ok := node[key].(string)
			if !ok || s == "" {
				return "", false
			}
			return s, true
		}

		next, ok := node[key].(map[string]any)
		if !ok {
			return "", false
		}
		node = next
	}
	return "", false
}

// videoURLRules lists the known aliases under which providers return a direct
// video URL, most specific naming first.
var videoURLRules = []fieldRule{
	{name: "video_url", path: []string{"video_url"}},
	{name: "url", path: []string{"url"}},
	{name: "result.video_url", path: []string{"result", "video_url"}},
	{name: "result.url", path: []string{"result", "url"}},
	{name: "data.video_url", path: []string{"data", "video_url"}},
}

// jobIDRules lists the known aliases under which providers return the
// identifier of an asynchronous generation job.
var jobIDRules = []fieldRule{
	{name: "job_id", path: []string{"job_id"}},
	{name: "id", path: []string{"id"}},
	{name: "task_id", path: []string{"task_id"}},
	{name: "data.task_id", path: []string{"data", "task_id"}},
}

func extractFirst(rules []fieldRule, body map[string]any) (string, bool) {
	for _, r := range rules {
		if v, ok := r.extract(body); ok {
			return v, true
		}
	}
	return "", false
}
