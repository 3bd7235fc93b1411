package cliapp

import (
	"fmt"

	"github.com/sammyer/boilerpy"
)

// extractorByName resolves one of the preset extractors by the name given
// to the --extractor flag.
func extractorByName(name string) (*boilerpy.Extractor, error) {
	switch name {
	case "", "article":
		return boilerpy.ArticleExtractor(), nil
	case "default":
		return boilerpy.DefaultExtractor(), nil
	case "largest":
		return boilerpy.LargestContentExtractor(), nil
	case "canola":
		return boilerpy.CanolaExtractor(), nil
	case "keepeverything":
		return boilerpy.KeepEverythingExtractor(), nil
	case "numwordsrules":
		return boilerpy.NumWordsRulesExtractor(), nil
	case "articlesentences":
		return boilerpy.ArticleSentencesExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown extractor %q (want article, default, largest, canola, keepeverything, numwordsrules, or articlesentences)", name)
	}
}
