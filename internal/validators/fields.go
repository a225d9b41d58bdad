package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldUsername targets the login name of a credentials pair.
	FieldUsername = "username"

	// FieldUsernameLength caps a new username at MaxUsernameLength characters.
	FieldUsernameLength = "username_length"

	// FieldPassword targets the presence of the plaintext password.
	FieldPassword = "password"

	// FieldPasswordStrength enforces the registration length rules:
	// at least MinPasswordLength characters and at most MaxPasswordBytes bytes.
	FieldPasswordStrength = "password_strength"

	// FieldRole targets the optional requested role; empty is allowed.
	FieldRole = "role"

	// FieldOwner targets the username a prompt belongs to.
	FieldOwner = "owner"

	// FieldInputText targets the prompt text.
	FieldInputText = "input_text"

	// FieldSource caps a caller-supplied source at MaxSourceLength characters.
	FieldSource = "source"

	// FieldPromptID targets the storage identifier of a prompt.
	FieldPromptID = "id"

	// FieldPrompts targets the list of prompts in a batch submission.
	FieldPrompts = "prompts"
)

const (
	MinPasswordLength = 6
	MaxPasswordBytes  = 72 // bcrypt input limit

	// Column widths of users.username, prompts.user_id and prompts.source.
	MaxUsernameLength = 100
	MaxSourceLength   = 50

	MinInputTextLength = 3
	MaxInputTextLength = 1000
)
