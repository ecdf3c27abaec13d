package prompts

// Defaults returns the fixed built-in prompt set. The set is merged into
// read paths after custom prompts and is never persisted or mutated in
// storage; callers receive fresh copies so transient flag changes (the
// denormalized IsFavorite) cannot leak between reads.
func Defaults() []Prompt {
	out := make([]Prompt, len(defaultPrompts))
	copy(out, defaultPrompts)
	for i := range out {
		if len(defaultPrompts[i].Tags) > 0 {
			out[i].Tags = append([]string(nil), defaultPrompts[i].Tags...)
		}
	}
	return out
}

// IsDefaultID reports whether id belongs to the built-in set.
func IsDefaultID(id string) bool {
	for _, p := range defaultPrompts {
		if p.ID == id {
			return true
		}
	}
	return false
}

var defaultPrompts = []Prompt{
	{
		ID:       "default-analysis-1",
		Title:    "Comprehensive Text Analysis",
		Category: "analysis",
		Text: `Analyze the following text comprehensively and systematically:

## Text
[Insert text here]

## Required
1. **Main Idea**: Identify the central idea
2. **Key Points**: Extract supporting points
3. **Style**: Analyze the style and tone used
4. **Audience**: Identify target audience
5. **Evaluation**: Provide objective critical evaluation
6. **Summary**: Write a brief summary in 3-5 sentences`,
		Tags:        []string{"analysis", "text", "critique", "summary"},
		Description: "Comprehensive and organized analysis for any text",
		IsDefault:   true,
	},
	{
		ID:       "default-analysis-2",
		Title:    "Data Analysis",
		Category: "analysis",
		Text: `Analyze the following data:

## Data
[Insert data here - table, numbers, statistics]

## Required
1. **Trends**: Identify main trends
2. **Patterns**: Discover recurring patterns
3. **Outliers**: Identify any abnormal values
4. **Insights**: Extract actionable insights
5. **Recommendations**: Provide data-driven recommendations`,
		Tags:      []string{"analysis", "data", "statistics"},
		IsDefault: true,
	},
	{
		ID:       "default-coding-1",
		Title:    "Write Code",
		Category: "coding",
		Text: `Write code in [Language]:

## Task
[Describe the required task]

## Requirements
- [ ] First requirement
- [ ] Second requirement
- [ ] Third requirement

## Constraints
- Performance: [performance specs]
- Compatibility: [requirements]

## Expected Output
- Clean and organized code
- Explanatory comments
- Error handling
- Usage examples`,
		Tags:      []string{"code", "programming", "development"},
		IsDefault: true,
	},
	{
		ID:       "default-coding-2",
		Title:    "Review and Improve Code",
		Category: "coding",
		Text: `Review the following code and provide improvements:

` + "```[Language]\n[Code here]\n```" + `

## Review Points
1. **Bugs**: Detect potential errors
2. **Security**: Identify security vulnerabilities
3. **Performance**: Suggest performance improvements
4. **Readability**: Improve readability
5. **Best Practices**: Apply best practices

## Output
- List of issues with explanations
- Improved code
- Explanation of changes`,
		Tags:      []string{"review", "code", "improvement", "security"},
		IsDefault: true,
	},
	{
		ID:       "default-coding-3",
		Title:    "Explain Code",
		Category: "coding",
		Text: `Explain the following code in detail:

` + "```[Language]\n[Code here]\n```" + `

## Required
1. **Overview**: What does this code do?
2. **Line by Line**: Explain each part
3. **Concepts**: Explain concepts used
4. **Inputs and Outputs**: Clarify the data
5. **Examples**: Provide usage examples

## Explanation Level: [Beginner/Intermediate/Advanced]`,
		Tags:      []string{"explanation", "code", "education"},
		IsDefault: true,
	},
	{
		ID:       "default-writing-1",
		Title:    "Write Professional Article",
		Category: "writing",
		Text: `Write a professional article:

## Topic
[Title or topic]

## Specifications
- **Word Count**: [number]
- **Audience**: [target audience]
- **Tone**: [formal/informal/academic]
- **Goal**: [inform/persuade/entertain]

## Required Structure
1. Engaging introduction (Hook)
2. Main ideas presentation
3. Supporting evidence and examples
4. Strong conclusion with call to action

## Additional Notes
[Any special requirements]`,
		Tags:      []string{"article", "writing", "content"},
		IsDefault: true,
	},
	{
		ID:       "default-writing-2",
		Title:    "Proofread and Improve Text",
		Category: "writing",
		Text: `Proofread and improve the following text:

## Original Text
[Insert text here]

## Required
1. **Language Correction**
   - Spelling errors
   - Grammar errors
   - Punctuation

2. **Style Improvement**
   - Sentence clarity
   - Structure variety
   - Expression strength

3. **Formatting**
   - Paragraph division
   - Logical coherence

## Output
- Corrected text
- List of major changes`,
		Tags:      []string{"proofreading", "editing", "language"},
		IsDefault: true,
	},
	{
		ID:       "default-writing-3",
		Title:    "Professional Translation",
		Category: "translation",
		Text: `Translate the following text professionally:

## Original Text
Source Language: [Language]
[Text]

## Target Language
[Language]

## Translation Guidelines
- Preserve accurate meaning
- Consider cultural context
- Use appropriate terminology
- Maintain tone and style
- [Any special notes]

## Output
- Translation
- Translator notes (if any)`,
		Tags:      []string{"translation", "languages"},
		IsDefault: true,
	},
	{
		ID:       "default-creative-1",
		Title:    "Generate Creative Ideas",
		Category: "creative",
		Text: `Help me generate creative ideas:

## Field
[Field or topic]

## Context
[Current situation and challenges]

## Goal
[What you want to achieve]

## Constraints
[Budget, time, resources]

## Required
1. **10 innovative ideas** with brief explanation
2. **Feasibility analysis** for top 3 ideas
3. **Suggested implementation steps**
4. **Additional inspiration sources**`,
		Tags:      []string{"creativity", "ideas", "brainstorming"},
		IsDefault: true,
	},
	{
		ID:       "default-creative-2",
		Title:    "Write Short Story",
		Category: "creative",
		Text: `Write a short story:

## Elements
- **Genre**: [Sci-fi/Romance/Mystery/etc]
- **Length**: [word count]
- **Main Character**: [brief description]
- **Setting**: [environment]
- **Time Period**: [time period]

## Theme or Message
[Central idea]

## Writing Style
[Descriptive/Dialogue/Stream of consciousness]

## Notes
[Any additional requirements]`,
		Tags:      []string{"story", "creative", "narrative"},
		IsDefault: true,
	},
	{
		ID:       "default-education-1",
		Title:    "Explain Educational Concept",
		Category: "education",
		Text: `Explain the following concept educationally:

## Concept
[Concept or topic]

## Learner Level
[Beginner/Intermediate/Advanced]

## Required
1. **Simple Definition**: One clear sentence
2. **Detailed Explanation**: With logical sequence
3. **Practical Examples**: 3-5 varied examples
4. **Analogies**: To aid understanding
5. **Interactive Questions**: To test comprehension
6. **Additional Resources**: For deeper learning

## Output
Organized with clear headings and short paragraphs`,
		Tags:      []string{"education", "explanation", "concept"},
		IsDefault: true,
	},
	{
		ID:       "default-business-1",
		Title:    "Brief Business Plan",
		Category: "business",
		Text: `Create a brief business plan:

## Project/Idea
[Project description]

## Target Market
[Audience and size]

## Required
1. **Executive Summary**
2. **Problem and Solution**
3. **Revenue Model**
4. **Competitive Analysis**
5. **Marketing Plan**
6. **Required Team**
7. **Initial Budget**
8. **Key Milestones**

## Timeframe
[Expected implementation duration]`,
		Tags:      []string{"business", "plan", "entrepreneurship"},
		IsDefault: true,
	},
	{
		ID:       "default-business-2",
		Title:    "Professional Email",
		Category: "business",
		Text: `Write a professional email:

## Email Type
[Inquiry/Follow-up/Proposal/Apology/Thanks]

## Recipient
[Job title and context]

## Subject
[Purpose of email]

## Key Points
- First point
- Second point
- Third point

## Tone
[Very formal/Formal/Friendly professional]

## Call to Action
[What you want recipient to do]`,
		Tags:      []string{"email", "business", "communication"},
		IsDefault: true,
	},
}
