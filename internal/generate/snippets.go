package generate

var snippetLanguages = []string{"javascript", "python", "go", "bash"}

// snippets are keyed by fence language; unknown languages fall back to bash.
var snippets = map[string]string{
	"javascript": "```javascript\n" +
		"// Fetch a user and fail loudly on non-2xx responses\n" +
		"const fetchUser = async (id) => {\n" +
		"  const res = await fetch(`/api/users/${id}`);\n" +
		"  if (!res.ok) {\n" +
		"    throw new Error(`request failed: ${res.status}`);\n" +
		"  }\n" +
		"  return res.json();\n" +
		"};\n" +
		"\n" +
		"fetchUser('123')\n" +
		"  .then((user) => console.log('user', user))\n" +
		"  .catch((err) => console.error(err));\n" +
		"```",

	"python": "```python\n" +
		"import json\n" +
		"from urllib.request import urlopen\n" +
		"\n" +
		"\n" +
		"def fetch_user(user_id: str) -> dict:\n" +
		"    with urlopen(f\"https://example.com/api/users/{user_id}\", timeout=10) as resp:\n" +
		"        return json.load(resp)\n" +
		"\n" +
		"\n" +
		"if __name__ == \"__main__\":\n" +
		"    print(fetch_user(\"123\"))\n" +
		"```",

	"go": "```go\n" +
		"package main\n" +
		"\n" +
		"import (\n" +
		"\t\"encoding/json\"\n" +
		"\t\"fmt\"\n" +
		"\t\"net/http\"\n" +
		"\t\"time\"\n" +
		")\n" +
		"\n" +
		"type User struct {\n" +
		"\tID   string `json:\"id\"`\n" +
		"\tName string `json:\"name\"`\n" +
		"}\n" +
		"\n" +
		"func fetchUser(id string) (*User, error) {\n" +
		"\tclient := &http.Client{Timeout: 10 * time.Second}\n" +
		"\tresp, err := client.Get(\"https://example.com/api/users/\" + id)\n" +
		"\tif err != nil {\n" +
		"\t\treturn nil, fmt.Errorf(\"fetch user: %w\", err)\n" +
		"\t}\n" +
		"\tdefer resp.Body.Close()\n" +
		"\n" +
		"\tvar u User\n" +
		"\tif err := json.NewDecoder(resp.Body).Decode(&u); err != nil {\n" +
		"\t\treturn nil, fmt.Errorf(\"decode user: %w\", err)\n" +
		"\t}\n" +
		"\treturn &u, nil\n" +
		"}\n" +
		"```",

	"bash": "```bash\n" +
		"#!/usr/bin/env bash\n" +
		"set -euo pipefail\n" +
		"\n" +
		"ENV=${1:-staging}\n" +
		"APP=my-application\n" +
		"\n" +
		"docker build -t \"$APP:latest\" .\n" +
		"docker tag \"$APP:latest\" \"$APP:$ENV\"\n" +
		"kubectl set image \"deployment/$APP\" app=\"$APP:$ENV\"\n" +
		"kubectl rollout status \"deployment/$APP\"\n" +
		"```",
}

func snippet(lang string) string {
	if s, ok := snippets[lang]; ok {
		return s
	}
	return snippets["bash"]
}
