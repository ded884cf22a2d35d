package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleModel  = "model"
	ChatMessageRoleSystem = "system"
)

const (
	SummarizePromptV1 = `Summarize the content behind the following URL in EXACTLY ONE sentence, in Italian.
Base the summary on what the URL, domain and path suggest about the page. Do not invent specific facts.

URL: %s

Respond with a JSON object only:
{"summary": "<one sentence>"}`

	CategorizePromptV1 = `You are organizing a user's bookmarks into workspaces ("spaces").
Given a URL and the list of available spaces, choose the single most fitting space.

URL: %s

Spaces:
%s

Respond with a JSON object only:
{"spaceId": "<id of the chosen space>"}
The spaceId MUST be one of the listed ids. Never invent an id.`

	DiscernInputPromptV1 = `Classify the following user input as either a web address or a free-text note.

Input:
%s

Respond with a JSON object only:
{"kind": "url"} or {"kind": "note"}`

	SmartSearchPromptV1 = `You are a search assistant over a user's personal bookmarks.
Given a natural-language query and the bookmark list, return the ids of the bookmarks that match
the INTENT of the query (not just keyword overlap), ordered from most to least relevant.
Returning an empty list is a valid answer.

Query: %s

Bookmarks:
%s

Respond with a JSON object only:
{"ids": ["<id>", ...]}`

	AnalyzeSpacePromptV1 = `Analyze the following workspace and its bookmarks. Answer ENTIRELY in Italian.

Workspace: %s

Bookmarks:
%s

Respond with a JSON object only:
{
  "analysis": "<short prose analysis>",
  "themes": ["<theme>", ...],    // between 3 and 5 key themes
  "suggestions": ["<suggestion>", ...]  // between 2 and 3 suggestions
}`

	ChatInSpacePromptV1 = `You are an assistant answering questions about the user's workspace "%s".
You may ONLY use the bookmarks listed below as knowledge. If the question cannot be answered from
them, say so plainly instead of inventing an answer. Answer in Italian.

Bookmarks:
%s`

	GenerateWorkspacePromptV1 = `You design complete developer workspaces. Given the user's request, produce a full nested
structure of spaces, folders and bookmarks. Prefer REAL tools sourced from the catalog excerpt
below over invented URLs. If the request is a literal JSON workspace document, reproduce that
structure instead of inventing one.

Catalog excerpt:
%s

User request:
%s

Respond with a JSON object only:
{
  "spaces": [
    {
      "name": "<space name>",
      "icon": "<symbolic icon name>",
      "category": "<optional category>",
      "folders": [
        {"name": "<folder name>", "bookmarks": [{"title": "...", "url": "...", "summary": "..."}]}
      ],
      "bookmarks": [{"title": "...", "url": "...", "summary": "..."}]
    }
  ]
}`

	DevelopIdeaSystemPromptV1 = `You help users develop a project idea into a structured workspace through conversation.
Follow these stages in order, one per assistant turn:
1. introduction - greet, restate the idea, ask one clarifying question.
2. exploration - dig into goals and constraints, one focused question at a time.
3. propose-structuring - propose a workspace structure and ASK the user to confirm it.
4. finalize - ONLY after the user has explicitly confirmed, emit the final payload.

You must NEVER mark the conversation finished unless the user's LAST message is an explicit
confirmation of your proposal. Answer in Italian.

Respond with a JSON object only:
{
  "reply": "<your conversational reply>",
  "stage": "introduction" | "exploration" | "propose-structuring" | "finalize",
  "isFinished": false | true,
  "payload": null | {
    "spaceName": "<name>",
    "icon": "<symbolic icon name>",
    "tasks": ["<task>", ...],
    "suggestedTools": ["<tool name>", ...]
  }
}`

	TextToolPromptV1 = `Apply the "%s" transformation to the text below. %s
Respond with a JSON object only: {"text": "<the transformed text>"}

Text:
%s`
)

// Per-operation instruction fragments for the text tools flow.
var TextToolInstructions = map[string]string{
	"correct":   "Fix grammar, spelling and punctuation without changing the meaning.",
	"summarize": "Produce a concise summary preserving the key points.",
	"translate": "Translate the text to Italian (or to English if it already is Italian).",
	"improve":   "Rewrite for clarity and flow, keeping the original tone.",
	"generate":  "Treat the text as a writing instruction and generate the requested content.",
}
