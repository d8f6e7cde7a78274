// Package segment splits input text into the ordered units that are scored.
//
// LineMode splits on line breaks and drops blank lines. SentenceMode hands
// the text to a SentenceSplitter; the default splitter is a punkt tokenizer
// trained per language, so abbreviations ("Dr."), decimals ("3.14") and
// initials do not end a sentence. The splitter sits behind an interface so
// the tokenizer can be replaced without touching the pipeline.
package segment
