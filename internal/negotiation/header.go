package negotiation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dunglas/httpsfv"
)

// Header names.
const (
	SDKClientHeader       = "SDK-Client"
	GraphQLFeaturesHeader = "GraphQL-Features"
)

// ParseSDKClientHeader extracts version and platform from an SDK-Client header.
// Format: version="4.39.0", platform=android (RFC 8941 Dictionary).
//
// Examples:
//   - version="4.39.0"                   → 4.39.0, ""
//   - version="4.39.0", platform=android → 4.39.0, android
//   - version="5.0.0";build=7            → 5.0.0, "" (params ignored)
//
// Returns error if header is empty, malformed, or missing the version key.
func ParseSDKClientHeader(header string) (*ClientContext, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, errors.New("empty SDK-Client header")
	}

	dict, err := httpsfv.UnmarshalDictionary([]string{header})
	if err != nil {
		return nil, fmt.Errorf("invalid SDK-Client header: %w", err)
	}

	version, err := dictString(dict, "version")
	if err != nil {
		return nil, err
	}
	if version == "" {
		return nil, errors.New("version key not found in SDK-Client header")
	}

	platform, err := dictString(dict, "platform")
	if err != nil {
		return nil, err
	}

	return &ClientContext{Version: version, Platform: platform}, nil
}

// dictString reads key as a string or token item. Missing keys yield "".
func dictString(dict *httpsfv.Dictionary, key string) (string, error) {
	member, ok := dict.Get(key)
	if !ok {
		return "", nil
	}

	item, ok := member.(httpsfv.Item)
	if !ok {
		return "", fmt.Errorf("%s value must be an item", key)
	}

	s, ok := itemString(item)
	if !ok {
		return "", fmt.Errorf("%s value must be a string or token", key)
	}
	return s, nil
}

// ParseGraphQLFeaturesHeader parses a GraphQL-Features header.
// Format: tokenize_credit_cards, "other_feature" (RFC 8941 List).
// An empty header yields no features. Duplicates are dropped.
func ParseGraphQLFeaturesHeader(header string) ([]string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, nil
	}

	list, err := httpsfv.UnmarshalList([]string{header})
	if err != nil {
		return nil, fmt.Errorf("invalid GraphQL-Features header: %w", err)
	}

	features := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, member := range list {
		item, ok := member.(httpsfv.Item)
		if !ok {
			return nil, errors.New("GraphQL-Features members must be items")
		}
		f, ok := itemString(item)
		if !ok {
			return nil, errors.New("GraphQL-Features members must be strings or tokens")
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		features = append(features, f)
	}
	return features, nil
}

// FormatGraphQLFeaturesHeader serializes features as an RFC 8941 List of strings.
func FormatGraphQLFeaturesHeader(features []string) (string, error) {
	list := make(httpsfv.List, 0, len(features))
	for _, f := range features {
		list = append(list, httpsfv.NewItem(f))
	}
	return httpsfv.Marshal(list)
}

func itemString(item httpsfv.Item) (string, bool) {
	switch v := item.Value.(type) {
	case string:
		return v, true
	case httpsfv.Token:
		return string(v), true
	default:
		return "", false
	}
}

// FormatSDKClientHeader serializes version and platform as an SDK-Client
// Dictionary. An empty platform is omitted.
func FormatSDKClientHeader(version, platform string) (string, error) {
	if strings.TrimSpace(version) == "" {
		return "", errors.New("version is required")
	}

	dict := httpsfv.NewDictionary()
	dict.Add("version", httpsfv.NewItem(version))
	if platform != "" {
		dict.Add("platform", httpsfv.NewItem(platform))
	}
	return httpsfv.Marshal(dict)
}
