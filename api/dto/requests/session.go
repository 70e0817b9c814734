// ABOUTME: Request DTOs for session endpoints
// ABOUTME: Huma validates lengths and enums from the struct tags

package requests

// ArticleRequest replaces the pasted article text
type ArticleRequest struct {
	Text string `json:"text" maxLength:"200000" doc:"Article text to summarize"`
}

// URLRequest replaces the URL input
type URLRequest struct {
	URL string `json:"url" maxLength:"2048" doc:"Article URL; the scheme may be omitted"`
}

// OptionsRequest changes tone and/or voice
type OptionsRequest struct {
	Tone  string `json:"tone,omitempty" enum:"Professional,Casual,Witty,Brief" doc:"Script tone"`
	Voice string `json:"voice,omitempty" enum:"Kore,Puck,Charon,Fenrir,Zephyr,Aoede" doc:"Narrator voice"`
}
