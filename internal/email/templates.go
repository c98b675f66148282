package email

import (
	"fmt"
	"html"

	"sendaboop-backend/internal/models"
)

// All user-supplied fields are escaped before being embedded in the HTML
// bodies. The dog image URL comes from the client too, so it is escaped
// as an attribute value like everything else.

// VerificationEmail is the phase-1 email asking the sender to confirm
// their boop by clicking the verification link.
func VerificationEmail(boop models.SendBoopRequest, verificationURL string) string {
	messageBlock := ""
	if boop.Message != "" {
		messageBlock = fmt.Sprintf(`
              <div style="background-color: #f8f0f0; padding: 16px; border-radius: 8px; margin-bottom: 20px;">
                <p style="font-size: 14px; color: #6b7280; margin: 0 0 4px;">Your message:</p>
                <p style="font-size: 16px; color: #4b5563; margin: 0; font-style: italic;">"%s"</p>
              </div>`, html.EscapeString(boop.Message))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Verify Your Boop</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f9ecec; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="padding: 40px 20px;">
    <tr>
      <td align="center">
        <table width="100%%" style="max-width: 500px; background-color: white; border-radius: 16px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1);">
          <tr>
            <td style="background-color: #f9d8d8; padding: 24px; text-align: center;">
              <h1 style="margin: 0; color: #1f2937; font-size: 28px;">Verify Your Boop</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px; text-align: center;">
              <p style="font-size: 18px; color: #4b5563; margin: 0 0 20px;">Hey %s!</p>
              <p style="font-size: 16px; color: #4b5563; margin: 0 0 20px;">
                Click the button below to send this adorable pup to <strong>%s</strong>:
              </p>
              <img src="%s" alt="%s" style="width: 100%%; max-width: 200px; border-radius: 12px; margin-bottom: 20px;">%s
              <div style="margin: 24px 0;">
                <a href="%s" style="display: inline-block; background: linear-gradient(315deg, #f87171 3%%, #f69a9a 44%%, #f85555 85%%); color: white; padding: 16px 32px; border-radius: 8px; text-decoration: none; font-weight: 600; font-size: 16px;">
                  Send This Boop!
                </a>
              </div>
              <p style="font-size: 14px; color: #9ca3af; margin: 0;">This link expires in 24 hours.</p>
            </td>
          </tr>
          <tr>
            <td style="background-color: #f9fafb; padding: 16px; text-align: center;">
              <p style="font-size: 12px; color: #9ca3af; margin: 0;">
                Didn't request this? You can safely ignore this email.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`,
		html.EscapeString(boop.SenderName),
		html.EscapeString(boop.RecipientName),
		html.EscapeString(boop.Dog.URL),
		html.EscapeString(boop.Dog.Alt),
		messageBlock,
		html.EscapeString(verificationURL),
	)
}

// RecipientEmail is the actual boop delivered to the recipient
func RecipientEmail(boop models.SendBoopRequest) string {
	messageBlock := ""
	if boop.Message != "" {
		messageBlock = fmt.Sprintf(`
              <div style="background-color: #f8f0f0; padding: 16px; border-radius: 8px; margin-bottom: 20px;">
                <p style="font-size: 16px; color: #4b5563; margin: 0; font-style: italic;">"%s"</p>
              </div>`, html.EscapeString(boop.Message))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>You got a Boop!</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f9ecec; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="padding: 40px 20px;">
    <tr>
      <td align="center">
        <table width="100%%" style="max-width: 500px; background-color: white; border-radius: 16px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1);">
          <tr>
            <td style="background-color: #f9d8d8; padding: 24px; text-align: center;">
              <h1 style="margin: 0; color: #1f2937; font-size: 28px;">You got a Boop! 🐾</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px; text-align: center;">
              <p style="font-size: 18px; color: #4b5563; margin: 0 0 20px;">Hey %s! 👋</p>
              <img src="%s" alt="%s" style="width: 100%%; max-width: 300px; border-radius: 12px; margin-bottom: 20px;">%s
              <p style="font-size: 16px; color: #f87171; margin: 0 0 20px; font-weight: 600;">
                — %s sent you this boop!
              </p>
              <a href="https://sendaboop.app" style="display: inline-block; background: linear-gradient(315deg, rgba(248, 113, 113) 3%%, rgb(246, 154, 154) 44%%, rgb(248, 85, 85) 85%%); color: white; padding: 12px 24px; border-radius: 8px; text-decoration: none; font-weight: 600; font-size: 14px;">
                Send a Boop to Someone 🐕
              </a>
            </td>
          </tr>
          <tr>
            <td style="background-color: #f8f0f0; padding: 16px; text-align: center;">
              <p style="font-size: 12px; color: #9ca3af; margin: 0;">
                Sent with love via Send a Boop 🐕
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`,
		html.EscapeString(boop.RecipientName),
		html.EscapeString(boop.Dog.URL),
		html.EscapeString(boop.Dog.Alt),
		messageBlock,
		html.EscapeString(boop.SenderName),
	)
}

// SenderConfirmationEmail tells the original sender their boop went out
func SenderConfirmationEmail(boop models.SendBoopRequest) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Your Boop was sent!</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f9ecec; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="padding: 40px 20px;">
    <tr>
      <td align="center">
        <table width="100%%" style="max-width: 500px; background-color: white; border-radius: 16px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1);">
          <tr>
            <td style="background-color: #f9d8d8; padding: 24px; text-align: center;">
              <h1 style="margin: 0; color: #1f2937; font-size: 28px;">Boop Sent! 🎈</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px; text-align: center;">
              <p style="font-size: 18px; color: #4b5563; margin: 0 0 20px;">Hey %s!</p>
              <p style="font-size: 16px; color: #4b5563; margin: 0 0 20px;">
                Your boop to <strong>%s</strong> has been sent successfully!
              </p>
              <img src="%s" alt="%s" style="width: 100%%; max-width: 200px; border-radius: 12px; margin-bottom: 20px;">
              <p style="font-size: 14px; color: #6b7280; margin: 0 0 20px;">
                They'll receive a cute doggo in their inbox. You're making someone's day brighter! ✨
              </p>
              <a href="https://sendaboop.app" style="display: inline-block; background: linear-gradient(315deg, rgba(248, 113, 113) 3%%, rgb(246, 154, 154) 44%%, rgb(248, 85, 85) 85%%); color: white; padding: 12px 24px; border-radius: 8px; text-decoration: none; font-weight: 600; font-size: 14px;">
                Send Another Boop 🐶
              </a>
            </td>
          </tr>
          <tr>
            <td style="background-color: #f9fafb; padding: 16px; text-align: center;">
              <p style="font-size: 12px; color: #9ca3af; margin: 0;">
                Sent with love via Send a Boop 🐕
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`,
		html.EscapeString(boop.SenderName),
		html.EscapeString(boop.RecipientName),
		html.EscapeString(boop.Dog.URL),
		html.EscapeString(boop.Dog.Alt),
	)
}

// ContactEmail relays a contact form submission to the site owner
func ContactEmail(msg models.ContactRequest) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Contact Form Submission</title>
</head>
<body style="margin: 0; padding: 0; background-color: #fdf2f8; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="padding: 40px 20px;">
    <tr>
      <td align="center">
        <table width="100%%" style="max-width: 500px; background-color: white; border-radius: 16px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1);">
          <tr>
            <td style="background-color: #f9d8d8; padding: 24px; text-align: center;">
              <h1 style="margin: 0; color: #1f2937; font-size: 28px;">New Contact Form Message 📬</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px;">
              <p style="font-size: 14px; color: #6b7280; margin: 0 0 8px;"><strong>From:</strong></p>
              <p style="font-size: 16px; color: #1f2937; margin: 0 0 16px;">%s</p>
              <p style="font-size: 14px; color: #6b7280; margin: 0 0 8px;"><strong>Email:</strong></p>
              <p style="font-size: 16px; color: #1f2937; margin: 0 0 16px;">
                <a href="mailto:%s" style="color: #f87171;">%s</a>
              </p>
              <p style="font-size: 14px; color: #6b7280; margin: 0 0 8px;"><strong>Message:</strong></p>
              <div style="background-color: #f9fafb; padding: 16px; border-radius: 8px;">
                <p style="font-size: 16px; color: #4b5563; margin: 0; white-space: pre-wrap;">%s</p>
              </div>
            </td>
          </tr>
          <tr>
            <td style="background-color: #f9fafb; padding: 16px; text-align: center;">
              <p style="font-size: 12px; color: #9ca3af; margin: 0;">
                Sent via Send a Boop Contact Form 🐕
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Comments),
	)
}
