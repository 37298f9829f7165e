package extract

import "fmt"

func partiesPrompt(text string) string {
	return fmt.Sprintf(`You are a music contract analyst. Extract all parties (people and entities) mentioned in this contract or document.

For each party, identify:
1. Full name
2. Role (artist, producer, songwriter, composer, publisher, manager, label, etc.)
3. Any additional relevant information

Contract text:
%s

Return ONLY a JSON object with a "parties" array:
{
    "parties": [
        {"name": "John Doe", "role": "artist", "additional_info": "performing artist"},
        {"name": "Jane Smith", "role": "producer", "additional_info": "executive producer"}
    ]
}

Be thorough but avoid duplicates. If uncertain about a role, use "party" as the role.`, text)
}

func worksPrompt(text string) string {
	return fmt.Sprintf(`You are a music contract analyst. Extract all musical works mentioned in this contract or document.

For each work, identify:
1. Title of the work
2. Type (Song, Album, EP, Single, Composition, Recording, etc.)
3. Any additional relevant information

Contract text:
%s

Return ONLY a JSON object with a "works" array:
{
    "works": [
        {"title": "Song Name", "work_type": "Song", "additional_info": "lead single"},
        {"title": "Album Name", "work_type": "Album", "additional_info": "debut album"}
    ]
}

Be thorough but avoid duplicates.`, text)
}

func sharesPrompt(text string) string {
	return fmt.Sprintf(`You are a music contract analyst. Extract ALL royalty share distributions from this contract or document.

CRITICAL: Look for ALL mentions of percentage splits, revenue sharing, or royalty distributions throughout the entire text, including splits mentioned in streaming revenue.

For EACH party and EACH type of royalty mentioned, create a separate entry.

For each royalty distribution, identify:
1. Party name receiving the royalty (use exact name from contract)
2. Type of royalty (streaming, publishing, mechanical, ...)
3. Percentage share (as a decimal number, e.g., 30.0 for 30%%)
4. Any relevant terms or conditions

Contract text:
%s

Return ONLY a JSON object with a "royalty_shares" array. Create ONE entry per party per royalty type:
{
    "royalty_shares": [
        {"party_name": "John Doe", "royalty_type": "publishing", "percentage": 30.0, "terms": "split equally"},
        {"party_name": "John Doe", "royalty_type": "streaming", "percentage": 30.0, "terms": "net revenue from streaming"}
    ]
}

IMPORTANT:
- If the same percentage applies to multiple royalty types, create separate entries for each type
- Use the party names exactly as they appear in the contract
- Be thorough - extract every single royalty split mentioned
- Streaming revenue should be categorized as "streaming" type
- Publishing splits should be categorized as "publishing" type`, text)
}

func summaryPrompt(text string) string {
	return fmt.Sprintf(`Provide a concise 3-4 sentence summary of this music contract or document, focusing on:
- Who the main parties are
- What the contract is about (which works)
- Key financial/royalty terms

Contract text:
%s

Return ONLY the summary text, no additional formatting.`, text)
}
