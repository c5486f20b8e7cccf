package normalize

import (
	"regexp"
	"strings"
)

type technology struct {
	name    string
	pattern *regexp.Regexp
}

func tech(name, expr string) technology {
	return technology{name: name, pattern: regexp.MustCompile(expr)}
}

// technologies pairs canonical names with the expressions detecting them,
// in output order. Word boundaries keep substrings honest: "java" must
// not fire on "javascript", nor "sql" on "postgresql". Bare "go" is
// deliberately absent: French postings use "Go" for gigabytes, so only
// "golang" counts. Bare "vue" is likewise skipped as an everyday French
// word; the framework is detected through its ".js" suffix.
var technologies = []technology{
	tech("javascript", `\bjavascript\b|\bjs\b`),
	tech("typescript", `\btypescript\b|\bts\b`),
	tech("python", `\bpython\b`),
	tech("java", `\bjava\b`),
	tech("php", `\bphp\b`),
	tech("c#", `c#`),
	tech("c++", `c\+\+`),
	tech("golang", `\bgolang\b`),
	tech("rust", `\brust\b`),
	tech("ruby", `\bruby\b`),
	tech("kotlin", `\bkotlin\b`),
	tech("swift", `\bswift\b`),
	tech("scala", `\bscala\b`),
	tech("react", `\breact(?:\.?js)?\b`),
	tech("angular", `\bangular(?:js)?\b`),
	tech("vue.js", `\bvue\.?js\b`),
	tech("node.js", `\bnode(?:\.?js)?\b`),
	tech("spring", `\bspring(?:\s?boot)?\b`),
	tech("symfony", `\bsymfony\b`),
	tech("laravel", `\blaravel\b`),
	tech("django", `\bdjango\b`),
	tech("flask", `\bflask\b`),
	tech(".net", `\.net\b|\bdotnet\b`),
	tech("rails", `\brails\b`),
	tech("html", `\bhtml5?\b`),
	tech("css", `\bcss3?\b`),
	tech("sql", `\bsql\b`),
	tech("postgresql", `\bpostgres(?:ql)?\b`),
	tech("mysql", `\bmysql\b`),
	tech("mongodb", `\bmongo(?:db)?\b`),
	tech("redis", `\bredis\b`),
	tech("elasticsearch", `\belastic\s?search\b`),
	tech("kafka", `\bkafka\b`),
	tech("rabbitmq", `\brabbitmq\b`),
	tech("docker", `\bdocker\b`),
	tech("kubernetes", `\bkubernetes\b|\bk8s\b`),
	tech("aws", `\baws\b`),
	tech("azure", `\bazure\b`),
	tech("gcp", `\bgcp\b|\bgoogle cloud\b`),
	tech("terraform", `\bterraform\b`),
	tech("ansible", `\bansible\b`),
	tech("jenkins", `\bjenkins\b`),
	tech("git", `\bgit\b`),
	tech("gitlab", `\bgitlab\b`),
	tech("linux", `\blinux\b`),
	tech("rest", `\brest(?:ful)?\b`),
	tech("graphql", `\bgraphql\b`),
}

// DetectTechnologies scans free text for known technology keywords and
// returns their canonical names in detection-table order. An empty result
// means the text mentions nothing this pipeline can index.
func DetectTechnologies(text string) []string {
	lowered := strings.ToLower(text)
	var found []string
	for _, t := range technologies {
		if t.pattern.MatchString(lowered) {
			found = append(found, t.name)
		}
	}
	return found
}
