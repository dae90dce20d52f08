package mailer

const (
	WelcomeSubject = "Hello, Thanks for Subscribing!"
	WelcomeBody    = `
Hello,

We're thrilled to welcome you to ABCDE! 🎉

Here's what you can expect:
✅ Exclusive content tailored for you
✅ Important updates and offers
✅ A community of like-minded individuals

If you have any questions, feel free to reach out.

Best regards,
The ABCDE Team
`
)
