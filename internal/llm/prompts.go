// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"fmt"
	"regexp"
	"strings"
)

// promptTemplate holds the system and user messages for one prompt.
// Placeholders use {name} syntax and are bound by Render.
type promptTemplate struct {
	system string
	user   string
}

// placeholderPattern matches {name} placeholders in template text. JSON
// schema fragments in the templates are safe: their keys are quoted, so a
// bare {word} never occurs outside a placeholder.
var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Render resolves a prompt identity into its system and user messages with
// all placeholders substituted. An unknown identity or an unbound
// placeholder is an error.
func Render(id PromptID, vars map[string]string) (system, user string, err error) {
	tmpl, ok := registry[id]
	if !ok {
		return "", "", fmt.Errorf("unknown prompt identity: %s", id)
	}
	user = tmpl.user
	var missing []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(tmpl.user, -1) {
		name := m[1]
		val, ok := vars[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		user = strings.ReplaceAll(user, "{"+name+"}", val)
	}
	if len(missing) > 0 {
		return "", "", fmt.Errorf("prompt %s: unbound variables: %s", id, strings.Join(missing, ", "))
	}
	return tmpl.system, user, nil
}

const jsonOnly = "Return ONLY valid JSON. No markdown."

var registry = map[PromptID]promptTemplate{
	PromptRouter: {
		system: "You are a travel request router. Analyze the user's travel request and determine the most appropriate route. " + jsonOnly,
		user: `
User travel request:
{user_input}

Determine the appropriate route based on:
- "clarify": Insufficient information (less than 2 key fields: duration, budget, companions, purpose)
- "candidates_only": User explicitly asks for destination candidates only
- "itinerary_only": User asks for itinerary/schedule for a specific destination
- "full": User wants full recommendation (default)

Return JSON schema exactly:
{
  "route": "full|clarify|candidates_only|itinerary_only",
  "reason": "Brief explanation in Korean",
  "missing_fields": ["field1", "field2"] or [],
  "confidence": 0.0-1.0
}
`,
	},

	PromptProfile: {
		system: "You are a travel analyst. " + jsonOnly,
		user: `
User travel request:
{user_input}

Return JSON schema exactly:
{
  "tags": ["..."],
  "top_priorities": ["..."],
  "constraints": {
    "season": "",
    "budget": "",
    "companions": "",
    "pace": "slow|medium|fast",
    "duration_days": 0,
    "domestic_or_international": "domestic|international|either"
  },
  "avoid": ["..."],
  "notes_for_recommender": ""
}
`,
	},

	PromptCandidates: {
		system: "You are a travel curator. " + jsonOnly,
		user: `
Traveler profile JSON:
{profile}

Generate 5 destination candidates that fit.

Return JSON schema:
{
  "candidates": [
    {
      "name": "City, Country",
      "why_fit": ["...","..."],
      "watch_out": ["..."],
      "best_length_days": 3
    }
  ]
}
`,
	},

	PromptClarify: {
		system: "You are a travel assistant. Generate clarifying questions to help understand the user's travel needs. " + jsonOnly,
		user: `
User travel request:
{user_input}

Missing fields that need clarification:
{missing_fields}

Generate 3-5 specific questions in Korean to help clarify the user's travel requirements.
Do NOT provide recommendations, only ask questions.

Return JSON schema exactly:
{
  "questions": [
    "질문 1",
    "질문 2",
    "질문 3"
  ],
  "context": "Brief explanation of why these questions are needed"
}
`,
	},

	PromptItinerary: {
		system: "You are a travel planner. Generate a detailed itinerary for the specified destination. Return ONLY valid JSON in Korean. No markdown.",
		user: `
User travel request:
{user_input}

Extract the destination from the user input and create a detailed itinerary.
Focus on practical, realistic suggestions.

Return JSON schema exactly:
{
  "destination": "City, Country",
  "duration_days": 0,
  "best_area_to_stay": "",
  "budget_tip": "",
  "itinerary": [
    {"day": 1, "morning":"", "afternoon":"", "evening":""},
    {"day": 2, "morning":"", "afternoon":"", "evening":""},
    {"day": 3, "morning":"", "afternoon":"", "evening":""},
    {"day": 4, "morning":"", "afternoon":"", "evening":""}
  ],
  "tips": ["팁 1", "팁 2", "팁 3"]
}
`,
	},

	PromptFinal: {
		system: "You are a travel planner. Return ONLY valid JSON in Korean. No markdown.",
		user: `
Traveler profile:
{profile}

Aggregator result:
{aggregation}

Pick the final destination from aggregator's final_choice and propose a 3-night 4-day plan.
Include validation summary (key validator insights) in the output.
Be realistic and avoid exaggeration.

Return JSON schema:
{
  "winner": {
    "name": "",
    "why": ["...","..."],
    "best_area_to_stay": "",
    "budget_tip": ""
  },
  "itinerary": [
    {"day": 1, "morning":"", "afternoon":"", "evening":""},
    {"day": 2, "morning":"", "afternoon":"", "evening":""},
    {"day": 3, "morning":"", "afternoon":"", "evening":""},
    {"day": 4, "morning":"", "afternoon":"", "evening":""}
  ],
  "validation_summary": {
    "key_strengths": ["..."],
    "key_risks": ["..."],
    "watchouts": ["..."]
  }
}
`,
	},

	PromptAggregate: {
		system: "You are a travel recommendation aggregator. Synthesize validator results to create a ranked list and final recommendation. " + jsonOnly,
		user: `
Traveler profile:
{profile}

Candidates:
{candidates}

Validator results:
{validators_results}

Task:
1. For each candidate, aggregate all validator scores and verdicts
2. Calculate a total_score (weighted average or your method)
3. Rank candidates by total_score
4. Select the top candidate as final_choice
5. Provide a second choice (runner-up) in ranked_candidates

For each ranked candidate, include:
- total_score: 0.0-1.0
- summary: Why this candidate ranks at this position (1-2 sentences)
- strengths: Key positive points from validators
- risks: Key concerns or warnings from validators
- watchouts: Important things to be aware of

For final_choice, include:
- why: Top 2-3 reasons this is the best choice
- what_to_confirm: Questions or confirmations needed before finalizing

IMPORTANT:
- All validator results are based on general knowledge, NOT real-time data
- Include this disclaimer in the output

Return JSON schema exactly:
{
  "ranked_candidates": [
    {
      "candidate_id": "",
      "name": "",
      "total_score": 0.0,
      "summary": "",
      "strengths": ["..."],
      "risks": ["..."],
      "watchouts": ["..."]
    }
  ],
  "final_choice": {
    "candidate_id": "",
    "name": "",
    "why": ["..."],
    "what_to_confirm": ["..."]
  },
  "disclaimer": "실시간 데이터가 아님을 명시"
}
`,
	},

	PromptValidatorBudgetFit: {
		system: "You are a budget analyst for travel recommendations. Evaluate whether the destination fits the traveler's stated budget. " + jsonOnly,
		user: `
Traveler profile:
{profile}

Candidate destination:
{candidate}

Candidate ID: {candidate_id}

Evaluate budget fit considering:
- Typical flight/transport cost to reach the destination
- Accommodation price level for the stated duration
- Daily costs (food, local transport, activities)
- Whether the stated budget covers a comfortable trip

Return JSON schema exactly:
{
  "validator": "budget_fit",
  "candidate_id": "",
  "score": 0.0,
  "verdict": "pass | warn | fail",
  "reasons": ["..."],
  "assumptions": ["실시간 데이터 아님", "..."],
  "questions_to_user": []
}

Scoring:
- score: 0.0-1.0 (1.0 = comfortably within budget, 0.0 = far over budget)
- verdict: "pass" (score >= 0.7), "warn" (0.4 <= score < 0.7), "fail" (score < 0.4)
`,
	},

	PromptValidatorVibeFit: {
		system: "You are a vibe analyst for travel recommendations. Evaluate if the destination matches the traveler's preferences and vibe. " + jsonOnly,
		user: `
Traveler profile:
{profile}

Candidate destination:
{candidate}

Candidate ID: {candidate_id}

Evaluate vibe fit considering:
- Quietness/peacefulness (if traveler prefers quiet)
- Cafe culture and coffee scene
- Walkability and pedestrian-friendly areas
- Natural environment (parks, nature spots)
- Overall atmosphere matching traveler's pace (slow/medium/fast)

Focus on:
- Does the city match the traveler's top priorities?
- Does it avoid what the traveler wants to avoid?
- Is the pace/atmosphere suitable?

Return JSON schema exactly:
{
  "validator": "vibe_fit",
  "candidate_id": "",
  "score": 0.0,
  "verdict": "pass | warn | fail",
  "reasons": ["..."],
  "assumptions": ["실시간 데이터 아님", "..."],
  "questions_to_user": []
}

Scoring:
- score: 0.0-1.0 (1.0 = perfect match, 0.0 = poor match)
- verdict: "pass" (score >= 0.7), "warn" (0.4 <= score < 0.7), "fail" (score < 0.4)
`,
	},

	PromptValidatorTransit: {
		system: "You are a transit analyst for travel recommendations. Evaluate how complex it is to reach and move around the destination. " + jsonOnly,
		user: `
Traveler profile:
{profile}

Candidate destination:
{candidate}

Candidate ID: {candidate_id}

Evaluate transit complexity considering:
- Direct flight availability and total travel time
- Airport-to-city access
- Local public transport quality and ease for foreigners
- Whether the trip duration justifies the travel overhead

Return JSON schema exactly:
{
  "validator": "transit_complexity",
  "candidate_id": "",
  "score": 0.0,
  "verdict": "pass | warn | fail",
  "reasons": ["..."],
  "assumptions": ["실시간 데이터 아님", "..."],
  "questions_to_user": []
}

Scoring:
- score: 0.0-1.0 (1.0 = very easy to reach and navigate, 0.0 = very complex)
- verdict: "pass" (score >= 0.7), "warn" (0.4 <= score < 0.7), "fail" (score < 0.4)
`,
	},

	PromptValidatorSafety: {
		system: "You are a safety analyst for travel recommendations. Evaluate general safety and risk factors for the destination. Provide balanced, practical advice. " + jsonOnly,
		user: `
Traveler profile:
{profile}

Candidate destination:
{candidate}

Candidate ID: {candidate_id}

Evaluate safety risk considering:
- General crime rates (petty theft, pickpocketing)
- Tourist-targeted scams
- Nighttime safety
- Solo traveler safety (if applicable)
- Overall safety reputation

IMPORTANT:
- Do NOT create excessive fear or panic
- Focus on general precautions, not extreme warnings
- Consider typical tourist experiences

Return JSON schema exactly:
{
  "validator": "safety_risk",
  "candidate_id": "",
  "score": 0.0,
  "verdict": "pass | warn | fail",
  "reasons": ["..."],
  "assumptions": ["실시간 데이터 아님", "..."],
  "questions_to_user": []
}

Scoring:
- score: 0.0-1.0 (1.0 = very safe, 0.0 = high risk)
- verdict: "pass" (score >= 0.7), "warn" (0.4 <= score < 0.7), "fail" (score < 0.4)
`,
	},

	PromptValidatorSafetyWeb: {
		system: "You are a safety analyst for travel recommendations. Evaluate general safety and risk factors for the destination based on the provided web search results. Provide balanced, practical advice. " + jsonOnly,
		user: `
Traveler profile:
{profile}

Candidate destination:
{candidate}

Candidate ID: {candidate_id}

Web search results:
{search_results}

Evaluate safety risk based on the search results:
- General crime rates (petty theft, pickpocketing)
- Tourist-targeted scams
- Nighttime safety
- Solo traveler safety (if applicable)
- Overall safety reputation

IMPORTANT CONSTRAINTS:
- Base your evaluation on the provided search results
- Cite specific information from the search results in your reasons
- Do NOT create excessive fear or panic
- Focus on general precautions, not extreme warnings
- Consider typical tourist experiences
- Provide balanced, practical advice
- If search results are insufficient, note it in assumptions
- Do NOT make up information not found in search results

Return JSON schema exactly:
{
  "validator": "safety_risk",
  "candidate_id": "",
  "score": 0.0,
  "verdict": "pass | warn | fail",
  "reasons": ["..."],
  "citations": [
    {
      "title": "...",
      "url": "...",
      "snippet": "..."
    }
  ],
  "assumptions": [
    "검색 결과 요약 기반",
    "실시간 데이터 아님"
  ],
  "questions_to_user": []
}

Scoring:
- score: 0.0-1.0 (1.0 = very safe, 0.0 = high risk)
- verdict: "pass" (score >= 0.7), "warn" (0.4 <= score < 0.7), "fail" (score < 0.4)
- citations: Include relevant search results that support your evaluation
`,
	},

	PromptValidatorSeason: {
		system: "You are a seasonality analyst for travel recommendations. Evaluate the destination's weather, season, and crowd levels for the travel period. " + jsonOnly,
		user: `
Traveler profile:
{profile}

Travel period: {season}

Candidate destination:
{candidate}

Candidate ID: {candidate_id}

Evaluate seasonality and weather:
- Typical weather conditions for the travel period
- Temperature and climate comfort
- Rainfall/precipitation patterns
- Tourist crowd levels (high/medium/low season)
- Seasonal events or festivals

Return JSON schema exactly:
{
  "validator": "seasonality_weather",
  "candidate_id": "",
  "score": 0.0,
  "verdict": "pass | warn | fail | unknown",
  "reasons": ["..."],
  "assumptions": ["실시간 데이터 아님", "..."],
  "questions_to_user": []
}

Scoring:
- score: 0.0-1.0 (1.0 = perfect season, 0.0 = poor season)
- verdict: "pass" (score >= 0.7), "warn" (0.4 <= score < 0.7), "fail" (score < 0.4), "unknown" (insufficient data)
`,
	},

	PromptValidatorSeasonWeb: {
		system: "You are a seasonality analyst for travel recommendations. Evaluate the destination's weather, season, and crowd levels based on the provided web search results. " + jsonOnly,
		user: `
Traveler profile:
{profile}

Travel period: {season}

Candidate destination:
{candidate}

Candidate ID: {candidate_id}

Web search results:
{search_results}

Evaluate seasonality and weather based on the search results:
- Typical weather conditions for the travel period
- Temperature and climate comfort
- Rainfall/precipitation patterns
- Tourist crowd levels (high/medium/low season)
- Seasonal events or festivals
- Best/worst aspects of visiting during this period

IMPORTANT:
- Base your evaluation on the provided search results
- Cite specific information from the search results in your reasons
- If search results are insufficient, note it in assumptions
- Do NOT make up information not found in search results

Return JSON schema exactly:
{
  "validator": "seasonality_weather",
  "candidate_id": "",
  "score": 0.0,
  "verdict": "pass | warn | fail | unknown",
  "reasons": ["..."],
  "citations": [
    {
      "title": "...",
      "url": "...",
      "snippet": "..."
    }
  ],
  "assumptions": [
    "검색 결과 요약 기반",
    "실시간 데이터 아님"
  ],
  "questions_to_user": []
}

Scoring:
- score: 0.0-1.0 (1.0 = perfect season, 0.0 = poor season)
- verdict: "pass" (score >= 0.7), "warn" (0.4 <= score < 0.7), "fail" (score < 0.4), "unknown" (insufficient data)
- citations: Include relevant search results that support your evaluation
`,
	},
}
