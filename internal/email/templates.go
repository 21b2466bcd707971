package email

import "fmt"

// Plain text bodies. The portal sends short transactional notices, so
// there is no HTML template layer.

func applicationReceivedBody(studentName, jobTitle, deadline string) (subject, body string) {
	subject = fmt.Sprintf("Application received: %s", jobTitle)
	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your application for %q has been recorded.\n\n"+
			"Please upload your resume and photograph before %s. "+
			"Applications without a resume are automatically rejected after the deadline.\n\n"+
			"Psychology Department Job Portal",
		studentName, jobTitle, deadline)
	return subject, body
}

func resumeReceivedBody(studentName, jobTitle string) (subject, body string) {
	subject = fmt.Sprintf("Documents received: %s", jobTitle)
	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your resume and photograph for %q have been received. "+
			"Your application is now under review.\n\n"+
			"Psychology Department Job Portal",
		studentName, jobTitle)
	return subject, body
}

func newSubmissionBody(studentName, studentNumber, jobTitle string) (subject, body string) {
	subject = fmt.Sprintf("New submission: %s (%s) for %s", studentName, studentNumber, jobTitle)
	body = fmt.Sprintf(
		"Student %s (ID %s) has submitted documents for %q.\n"+
			"The resume and photograph are attached.",
		studentName, studentNumber, jobTitle)
	return subject, body
}

func statusUpdateBody(studentName, jobTitle, status, feedback string) (subject, body string) {
	subject = fmt.Sprintf("Application update: %s", jobTitle)
	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your application for %q has been updated.\n\n"+
			"New status: %s\n",
		studentName, jobTitle, status)
	if feedback != "" {
		body += fmt.Sprintf("\nFeedback from the reviewing teacher:\n%s\n", feedback)
	}
	body += "\nPsychology Department Job Portal"
	return subject, body
}

func deadlineExpiredBody(studentName, jobTitle string) (subject, body string) {
	subject = fmt.Sprintf("Application expired: %s", jobTitle)
	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your application for %q was automatically rejected because no "+
			"resume was uploaded within the 48 hour window.\n\n"+
			"You may apply again to any open position.\n\n"+
			"Psychology Department Job Portal",
		studentName, jobTitle)
	return subject, body
}

func otpBody(name, code string) (subject, body string) {
	subject = "Your profile change verification code"
	body = fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your verification code is: %s\n\n"+
			"The code expires shortly. If you did not request a profile "+
			"change, ignore this message.\n\n"+
			"Psychology Department Job Portal",
		name, code)
	return subject, body
}
