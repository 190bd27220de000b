/*
Package agentapi holds the error vocabulary shared by every part of code-review-agent.

Each constructor returns a serum error with a stable code; callers branch on
serum.Code rather than on message text.
*/
package agentapi
