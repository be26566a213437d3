package email

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Sender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                string
	verificationTemplate  string
	verificationBaseUrl   url.URL
	passwordResetTemplate string
	passwordResetBaseUrl  url.URL
}

func NewSender(
	awsConfig aws.Config,
	sender string,
	verificationTemplate string,
	verificationBaseUrl url.URL,
	passwordResetTemplate string,
	passwordResetBaseUrl url.URL,
) *Sender {
	return &Sender{
		ses:                   ses.NewFromConfig(awsConfig),
		sender:                sender,
		verificationTemplate:  verificationTemplate,
		verificationBaseUrl:   verificationBaseUrl,
		passwordResetTemplate: passwordResetTemplate,
		passwordResetBaseUrl:  passwordResetBaseUrl,
	}
}

func (s *Sender) SendVerification(
	ctx context.Context,
	recipientName string,
	recipientEmail string,
	token string,
	expiresIn string,
) error {
	templateParamsBytes, err := json.Marshal(
		verificationTemplateParams{
			Name:            recipientName,
			VerificationUrl: s.verificationBaseUrl.JoinPath(token).String(),
			ExpiresIn:       expiresIn,
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{recipientEmail},
			},
			Template:     &s.verificationTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

func (s *Sender) SendPasswordReset(
	ctx context.Context,
	recipientName string,
	recipientEmail string,
	token string,
	expiresIn string,
) error {
	templateParamsBytes, err := json.Marshal(
		passwordResetTemplateParams{
			Name:             recipientName,
			PasswordResetUrl: s.passwordResetBaseUrl.JoinPath(token).String(),
			ExpiresIn:        expiresIn,
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{recipientEmail},
			},
			Template:     &s.passwordResetTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

type verificationTemplateParams struct {
	Name            string `json:"name"`
	VerificationUrl string `json:"verificationUrl"`
	ExpiresIn       string `json:"expiresIn"`
}

type passwordResetTemplateParams struct {
	Name             string `json:"name"`
	PasswordResetUrl string `json:"passwordResetUrl"`
	ExpiresIn        string `json:"expiresIn"`
}
