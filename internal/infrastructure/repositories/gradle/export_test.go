package gradle

// Tokenize exposes tokenize for testing and reports the event kinds as
// "open", "close" or "stmt" next to their text.
func Tokenize(content string) ([][2]string, error) {
	events, err := tokenize(content, "test.gradle.kts")
	if err != nil {
		return nil, err
	}

	kinds := map[eventKind]string{eventOpen: "open", eventClose: "close", eventStatement: "stmt"}
	result := make([][2]string, 0, len(events))
	for _, ev := range events {
		result = append(result, [2]string{kinds[ev.kind], ev.text})
	}
	return result, nil
}
