// Package presets holds the built-in AI service catalog used to prefill the
// create form. cmd/seed writes it into postgres; the memory driver loads it
// directly at boot.
package presets

import "github.com/237films-bot/subtrack/internal/entity"

func Defaults() []entity.ServicePreset {
	return []entity.ServicePreset{
		{Name: "ChatGPT Plus", Color: "#10a37f", Icon: "openai", URL: "https://chat.openai.com"},
		{Name: "Claude Pro", Color: "#d97757", Icon: "anthropic", URL: "https://claude.ai"},
		{Name: "Gemini Advanced", Color: "#4285f4", Icon: "google", URL: "https://gemini.google.com"},
		{Name: "Perplexity Pro", Color: "#20808d", Icon: "perplexity", URL: "https://perplexity.ai"},
		{Name: "Midjourney", Color: "#5865f2", Icon: "midjourney", URL: "https://midjourney.com"},
		{Name: "DALL-E", Color: "#000000", Icon: "openai", URL: "https://labs.openai.com"},
		{Name: "Runway", Color: "#00ff88", Icon: "runway", URL: "https://runwayml.com"},
		{Name: "Higgsfield", Color: "#7c3aed", Icon: "higgsfield", URL: "https://higgsfield.ai"},
		{Name: "Genspark", Color: "#ff6b35", Icon: "genspark", URL: "https://genspark.ai"},
		{Name: "ElevenLabs", Color: "#1f2937", Icon: "elevenlabs", URL: "https://elevenlabs.io"},
		{Name: "Suno", Color: "#f59e0b", Icon: "suno", URL: "https://suno.com"},
		{Name: "Udio", Color: "#e11d48", Icon: "udio", URL: "https://udio.com"},
		{Name: "Pika", Color: "#facc15", Icon: "pika", URL: "https://pika.art"},
		{Name: "GitHub Copilot", Color: "#24292f", Icon: "github", URL: "https://github.com/features/copilot"},
		{Name: "Cursor Pro", Color: "#111111", Icon: "cursor", URL: "https://cursor.com"},
	}
}
