package tracing

// Span attribute keys used by code-review-agent
const (
	AttrKeyErrorCode      = "code_review_agent.error.code"
	AttrKeyInvocationId   = "code_review_agent.invocation.id"
	AttrKeyInvocationArgc = "code_review_agent.invocation.argc"
	AttrKeySubcommandName = "code_review_agent.subcommand.name"
)
