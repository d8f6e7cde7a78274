package segment

import (
	"fmt"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/data"
	"github.com/neurosnap/sentences/english"

	"aqcalc/internal/language"
)

// Punkt splits sentences with a pre-trained punkt model. Its tokenizer only
// reads trained parameters, so one Punkt may be shared across goroutines.
type Punkt struct {
	lang      string
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunkt loads the punkt model for lang (any code language.ToISO2 accepts).
// English uses the tokenizer variant with extra abbreviation and
// multi-punctuation handling.
func NewPunkt(lang string) (*Punkt, error) {
	model, ok := language.Model(lang)
	if !ok {
		return nil, fmt.Errorf("sentence model: unsupported language %q (supported: %v)", lang, language.Supported())
	}
	if model == "english" {
		tokenizer, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			return nil, fmt.Errorf("sentence model english: %w", err)
		}
		return &Punkt{lang: "en", tokenizer: tokenizer}, nil
	}
	raw, err := data.Asset("data/" + model + ".json")
	if err != nil {
		return nil, fmt.Errorf("sentence model %s: %w", model, err)
	}
	training, err := sentences.LoadTraining(raw)
	if err != nil {
		return nil, fmt.Errorf("sentence model %s: %w", model, err)
	}
	return &Punkt{lang: language.ToISO2(lang), tokenizer: sentences.NewSentenceTokenizer(training)}, nil
}

// Language returns the ISO 639-1 code of the loaded model.
func (p *Punkt) Language() string { return p.lang }

// Sentences implements SentenceSplitter.
func (p *Punkt) Sentences(text string) []string {
	tokens := p.tokenizer.Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, s := range tokens {
		out = append(out, s.Text)
	}
	return out
}
