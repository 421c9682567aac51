package generation

import "fmt"

// SystemPrompt frames the model's role for providers with a system slot.
const SystemPrompt = "You are a helpful assistant that generates FAQs from documents."

// promptTemplate asks for a fixed number of pairs in a strict JSON shape.
// Parsing falls back to the Q:/A: format when a model ignores the shape.
const promptTemplate = `You are an expert at creating helpful Frequently Asked Questions (FAQs) from documents.

Based on the following text, generate %d relevant and useful question-answer pairs.

Guidelines:
1. Questions should be natural and reflect what users would actually ask
2. Answers should be clear, concise, and based ONLY on the provided text
3. Do not make up information - if something isn't in the text, don't include it
4. Focus on the most important and useful information
5. Avoid yes/no questions - prefer questions that elicit detailed answers

Text:
%s

Please provide your response in the following JSON format:
{
    "faqs": [
        {
            "question": "Question text here?",
            "answer": "Answer text here."
        }
    ]
}

Generate exactly %d FAQs.`

// BuildPrompt renders the generation prompt for one chunk.
func BuildPrompt(chunkText string, maxFAQs int) string {
	return fmt.Sprintf(promptTemplate, maxFAQs, chunkText, maxFAQs)
}
