package gemini

// SystemInstruction frames every advice request.
const SystemInstruction = "You are a world-class AI career coach. Provide concise, actionable advice about skill development, job search, interviews, and career growth. Use clear examples and recommend resources if possible."

const (
	missingKeyMessage  = "API Key not provided."
	noResponseMessage  = "Sorry, could not generate a response."
	noBodyMessage      = "No response from server."
	exhaustedFormat    = "API call failed with status: %s. Error: %s"
	transportErrFormat = "An error occurred while connecting to the AI assistant: %v"
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction content   `json:"systemInstruction"`
}

func buildRequest(question, instruction string) generateRequest {
	return generateRequest{
		Contents:          []content{{Parts: []part{{Text: question}}}},
		SystemInstruction: content{Parts: []part{{Text: instruction}}},
	}
}

// generateResponse mirrors only the path to the first answer.
// Pointers distinguish absent fields from empty ones.
type generateResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r generateResponse) firstText() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}
	c := r.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 {
		return "", false
	}
	text := c.Parts[0].Text
	if text == nil {
		return "", false
	}
	return *text, true
}
