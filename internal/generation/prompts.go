package generation

import "github.com/tessella-labs/tessella/internal/core/ports/driven"

// defaultPrompts contains embedded default prompt templates, used when
// no PromptStore is configured or a named prompt cannot be loaded.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptSummarization: `You are an AI specialized in multi-language summaries. Your task is to summarize the provided text by focusing on the key points, central themes, and significant details.

Ensure the summary is approximately 30%% of the original text length. Avoid superficial details or unnecessary information.

Follow these additional guidelines to generate the summary:
- Produce the summary in the same language as the input text
- Keep the tone and style consistent with the original
- Do not add introductions, conclusions, or external knowledge
- Do not use verbs in the first person

Text:
%s`,

	driven.PromptDescription: `Generate only a 2 to 3 sentence description of this document in the same language as the original document. Make sure to outline the main purpose of the document in your description.

Do not use introduction phrases, just output the description.

Text:
%s`,

	driven.PromptTagging: `You are an AI specialized in extracting key topics, tags, and keywords from text. Your task is to generate a concise list of relevant tags that capture the core subjects and themes of the provided document.

Follow these guidelines when generating the tags:
- Ensure the tags are in the same language as the document
- Use lowercase words only and avoid punctuation
- Include between 1 to 4 tags that cover the main subjects of the document
- Avoid generic words like "document", "content", or "information"
- Do not repeat tags or include any that are redundant

Output the tags in a comma-separated format, like so:
tag1, tag2, tag3

Text:
%s`,

	driven.PromptTranslation: `You are an AI specialized in translating text between multiple languages. Your task is to translate the provided document into the target language accurately, while preserving the meaning, context, and style of the original text.

Follow these guidelines when translating:
- Use vocabulary, syntax, and tone appropriate for the target language
- Do not add introductions, explanations, or footnotes
- Avoid word-for-word translation; prioritize fluidity and coherence
- Preserve any line breaks, headings, or sections of the original document

Translate the text to %s.

Text:
%s`,
}

// DefaultPrompt returns the embedded default template for a prompt name.
func DefaultPrompt(name string) (string, bool) {
	prompt, ok := defaultPrompts[name]
	return prompt, ok
}
