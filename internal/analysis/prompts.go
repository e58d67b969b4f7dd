package analysis

import "github.com/2beens/fitscore/internal/assessment"

var prompts = map[assessment.TestType]string{
	assessment.TestTypeVerticalJump: `You are an expert fitness trainer analyzing a vertical jump video. Watch carefully and measure:
1. EXACT jump height in centimeters by tracking the person's highest point
2. Takeoff form (0-100): knee bend, arm swing, body position
3. Landing technique (0-100): balance, knee absorption

Count frame by frame if needed. Be precise with measurements.
Return ONLY valid JSON: {"jumpHeight": <exact_cm>, "formScore": <0-100>, "recommendations": ["specific tip 1", "specific tip 2"], "errors": []}`,

	assessment.TestTypeSitUps: `You are an expert fitness trainer counting sit-ups. Watch the ENTIRE video carefully:
1. COUNT EVERY VALID REP: Full range from lying down to sitting up, elbows to knees
2. REJECT invalid reps: partial range, improper form, not touching knees
3. Rate form quality (0-100) based on technique consistency

Count slowly and accurately. Each rep must be complete.
Return ONLY valid JSON: {"reps": <exact_count>, "formScore": <0-100>, "recommendations": ["specific form tip 1", "specific form tip 2"], "errors": []}`,

	assessment.TestTypePushUps: `You are an expert fitness trainer counting push-ups. Analyze the COMPLETE video:
1. COUNT VALID REPS ONLY: Chest must nearly touch ground, full arm extension up
2. REJECT partial reps: not going down enough, not pushing up fully
3. Check body alignment: straight line from head to heels

Be strict with counting. Quality over quantity.
Return ONLY valid JSON: {"reps": <exact_count>, "formScore": <0-100>, "recommendations": ["specific technique tip 1", "specific technique tip 2"], "errors": []}`,

	assessment.TestTypePullUps: `You are an expert fitness trainer counting pull-ups. Watch every movement:
1. COUNT COMPLETE REPS: Chin must clear the bar, full arm extension down
2. REJECT incomplete reps: not reaching chin over bar, not fully extending
3. Rate grip and control technique

Count precisely. Each rep must be full range of motion.
Return ONLY valid JSON: {"reps": <exact_count>, "formScore": <0-100>, "recommendations": ["specific pull-up tip 1", "specific pull-up tip 2"], "errors": []}`,

	assessment.TestTypeShuttleRun: `You are a track coach timing shuttle runs. Analyze the complete performance:
1. COUNT exact number of laps/shuttles completed
2. ESTIMATE total time in seconds by watching start to finish
3. Rate agility and direction changes

Time accurately from start to complete stop.
Return ONLY valid JSON: {"laps": <exact_count>, "time": <seconds>, "agility": <0-100>, "recommendations": ["speed tip 1", "agility tip 2"], "errors": []}`,

	assessment.TestTypeFlexibilityTest: `You are a flexibility expert measuring reach distance:
1. MEASURE maximum reach in centimeters from starting position
2. Rate flexibility level based on range of motion
3. Assess form and technique

Measure precisely using visual reference points.
Return ONLY valid JSON: {"reach": <cm_distance>, "flexibility": <0-100>, "recommendations": ["flexibility tip 1", "stretch tip 2"], "errors": []}`,

	assessment.TestTypeAgilityLadder: `You are an agility coach timing ladder drills:
1. TIME the complete drill from start to finish in seconds
2. COUNT foot faults or mistakes
3. Rate footwork speed and accuracy

Time precisely and note any errors.
Return ONLY valid JSON: {"time": <seconds>, "footwork": <0-100>, "recommendations": ["footwork tip 1", "speed tip 2"], "errors": []}`,

	assessment.TestTypeEnduranceRun: `You are a running coach analyzing endurance performance:
1. ESTIMATE distance covered by counting laps or tracking movement
2. CALCULATE average pace in minutes per kilometer
3. Rate running form and consistency

Analyze the complete running session.
Return ONLY valid JSON: {"distance": <km>, "pace": <min_per_km>, "endurance": <0-100>, "recommendations": ["running tip 1", "endurance tip 2"], "errors": []}`,

	assessment.TestTypeHeightWeight: `You are a health professional taking measurements:
1. ESTIMATE height in centimeters from visual reference
2. ESTIMATE weight in kilograms from body composition
3. CALCULATE BMI from height and weight

Make reasonable estimates based on visual assessment.
Return ONLY valid JSON: {"height": <cm>, "weight": <kg>, "bmi": <calculated>, "recommendations": ["health tip 1", "fitness tip 2"], "errors": []}`,
}

// PromptFor returns the model instruction for a test type.
// Unknown test types get the sit-ups prompt.
func PromptFor(testType assessment.TestType) string {
	if p, ok := prompts[testType]; ok {
		return p
	}
	return prompts[assessment.TestTypeSitUps]
}

const foodPrompt = `Analyze this food image and provide detailed nutritional information.

Identify the food items and estimate:
- Food name/description
- Calories per serving
- Protein (grams)
- Carbohydrates (grams)
- Fat (grams)
- Fiber (grams)
- Sugar (grams)
- Sodium (milligrams)
- Health score (0-100, where 100 is very healthy)
- 3 specific health recommendations

Return ONLY valid JSON:
{
  "foodName": "food description",
  "calories": number,
  "protein": number,
  "carbs": number,
  "fat": number,
  "fiber": number,
  "sugar": number,
  "sodium": number,
  "healthScore": number,
  "recommendations": ["tip1", "tip2", "tip3"]
}`
