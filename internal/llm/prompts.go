package llm

import "strings"

// SystemPrompt establishes the resume editor persona for every rewrite call.
const SystemPrompt = "You are a specialized resume editor focused on tailoring resumes for product management positions with expertise in data-centric SaaS and cloud platforms."

const rewriteTemplate = `
Here is the resume:
{{RESUME_TEXT}}

Job Description:
{{JOB_DESCRIPTION}}

You are a highly skilled resume editor tasked with tailoring this resume specifically for the provided product management role. Follow the detailed instructions below.

1. **Analyze the Resume & Job Description**:
   - Carefully review each section of the resume (skills, experience, projects) to identify existing skills, responsibilities, and achievements.
   - Extract and understand key skills, qualifications, and responsibilities from the job description, particularly data governance, metadata management, agile processes, and cloud technologies. Use these to inform your editing.

2. **Edit and Align Experience with Job Description**:
   - Modify each bullet point in the experience section to align with the job description.
   - Integrate specific keywords (e.g., "data-centric SaaS," "metadata harmonization," "DevOps tools," "agile environments") naturally into relevant bullet points, reflecting alignment with the job's required skills.
   - Reformat each bullet to emphasize impact, e.g., "Achieved [X]% improvement in [metric] by implementing [Y] technique."

3. **Optimize the Skills Section**:
   - Highlight essential skills from the job description, such as "data governance," "recommendation systems," and cloud platforms like AWS, Azure, or Google Cloud.
   - Add specific cloud and programming tools from the job description (e.g., Spark, Airflow, GitHub) where applicable to emphasize technical alignment.

4. **Quantify Achievements**:
   - Ensure each bullet has a quantifiable metric (e.g., percentage improvements, user engagement) where applicable.
   - If quantifiable results aren't provided, estimate logically based on standard industry outcomes for similar roles.

5. **Use Impact-Oriented Action Verbs**:
   - Begin each bullet point with a strong action verb that communicates initiative, leadership, and results. Examples: Spearheaded, Optimized, Integrated, Enhanced.

6. **Tailored Suggestions for Improvement**:
   - Provide **specific, resume-based suggestions** for improving alignment with the job description, such as:
       - **Add Missing Keywords**: Identify any missing or underrepresented keywords from the job description and suggest where to include them for better alignment.
       - **Highlight Relevant Certifications**: If the candidate has relevant certifications (e.g., Product Management, Agile, or Cloud certifications), ensure they're highlighted under skills or a dedicated certifications section. If certifications are missing, suggest obtaining key industry-recognized credentials that align with product management.
       - **Emphasize Product Development Experience**: Recommend elaborations in roles that may reflect hands-on experience in product lifecycle or data platform development.
       - **Ensure Product Management Competency Visibility**: If product management skills and processes (e.g., roadmap planning, stakeholder management) aren't prominent, suggest ways to highlight them in both the skills and experience sections.
       - **Resume Format Consistency**: Check for and recommend uniform formatting throughout.

7. **Scoring and Final Review**: The score provided must be the score considering the fact that all the above mentioned edits have been done in the resume. Grading must be based on the new edited resume.
   - Provide a Total Resume Score Out of 100: Simulate an ATS tracker to evaluate the resume holistically. Score based on the following weighted criteria:
   - Job Fit (20%): Assess how well the candidate's overall experience, skills, and achievements align with the role's key responsibilities and requirements.
   - Skill Alignment (25%): Match the resume's skills to those specified in the job description, including technical skills (e.g., data governance, metadata management, cloud platforms) and soft skills (e.g., agile collaboration, stakeholder management).
   - Experience Relevance (25%): Evaluate the relevance of professional roles and achievements to the job requirements, emphasizing areas like product lifecycle management, team collaboration, and tools usage.
   - Action Verbs and Clarity (15%): Assess the use of strong, impact-oriented action verbs and the clarity of each bullet point. Examples: Spearheaded, Enhanced, Optimized, Delivered.
   - Measurable Achievements (15%): Analyze whether the resume includes quantifiable results (e.g., increased efficiency by 20%, improved engagement rates by 30%) to demonstrate impact effectively.
   - Generate a Total Score: Aggregate the scores from all criteria to provide a single total score out of 100.

Additional Instructions:
   - Ensure the tone remains professional and concise, fitting a mid- to senior-level product management position.
   - Tailor language to effectively convey the candidate's qualifications for a product management role.
Note - The final score should be referred to as "Total Score".
`

// BuildRewritePrompt renders the user message with the verbatim resume text
// and job description substituted into the fixed instruction block.
func BuildRewritePrompt(resumeText, jobDescription string) string {
	replacer := strings.NewReplacer(
		"{{RESUME_TEXT}}", resumeText,
		"{{JOB_DESCRIPTION}}", jobDescription,
	)
	return replacer.Replace(rewriteTemplate)
}
