package usecase

// Test helpers - exported for testing
var (
	VerifySignatureForTest = verifySignature
	InQuietHoursForTest    = inQuietHours
)
