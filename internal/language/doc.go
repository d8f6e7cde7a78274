// Package language normalizes the language setting used for sentence
// segmentation.
//
// Codes may be given as ISO 639-1 ("de"), ISO 639-2 ("deu", "ger"), English
// words ("german") or BCP-47 tags ("de-AT", "pt_BR"). Each supported language
// maps to the name of the punkt training set that ships with the sentence
// tokenizer.
package language
