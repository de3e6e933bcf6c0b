package discord

// Test helpers - exported for testing
var (
	ToEmbedForTest            = toEmbed
	CommandDefinitionsForTest = commandDefinitions
)
