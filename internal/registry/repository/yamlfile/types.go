package yamlfile

// document is the on-disk layout:
//
//	github-bot:
//	  baseurl: https://relay.example.com/hooks/{uuid}
//	  token: "123456:ABC"
//	  chats:
//	    <token>: <chat id>
type document struct {
	GitHubBot section `yaml:"github-bot"`
}

type section struct {
	BaseURL string           `yaml:"baseurl"`
	Token   string           `yaml:"token"`
	Chats   map[string]int64 `yaml:"chats"`
}
