package llm

// UserInstruction accompanies the image in the user turn.
const UserInstruction = "Extract menu items from this image. Output strict JSON."

func BuildMenuExtractionPrompt() string {
	return `You are a precise menu parsing assistant. Extract a clean JSON array of menu items.
Return strictly JSON with this shape: { "items": [ { "name": string, "price": number|null, "description": string|null, "section": string|null, "tags": string[] } ] }.
- price: number in USD without symbols (or null if missing)
- description: null if not present
- section: a short category if present
- tags: 2-4 short keywords
Do not include any extra text outside of the JSON.

If nothing can be read from the image, return exactly:
{ "items": [] }`
}
