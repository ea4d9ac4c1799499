//go:build integration

/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/webtest/pkg/apiclient"
	"github.com/unikorn-cloud/webtest/test/fixtures"
)

var _ = Describe("Response Validation", Label(fixtures.LabelAPI), func() {
	var validator *apiclient.Validator

	BeforeEach(func() {
		var err error

		validator, err = apiclient.NewValidator()
		Expect(err).NotTo(HaveOccurred(), "Embedded API document should load")
	})

	It("should declare a JSON content type", func() {
		resp, err := client.Get(ctx, "/posts/1")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Header.Get("Content-Type")).To(ContainSubstring("application/json"))
		Expect(resp.IsJSON()).To(BeTrue())
	})

	It("should match the post schema", func() {
		resp, err := client.Get(ctx, "/posts/1")
		Expect(err).NotTo(HaveOccurred())
		Expect(validator.ValidateResponse(apiclient.SchemaPost, resp)).To(Succeed())

		var post map[string]any
		Expect(resp.JSON(&post)).To(Succeed())

		for _, field := range []string{"userId", "id", "title", "body"} {
			Expect(post).To(HaveKey(field), "Missing field: %s", field)
		}
	})

	It("should match the post list schema", func() {
		resp, err := client.Get(ctx, "/posts")
		Expect(err).NotTo(HaveOccurred())
		Expect(validator.ValidateResponse(apiclient.SchemaPostList, resp)).To(Succeed())
	})

	It("should match the comment list schema", func() {
		resp, err := client.Get(ctx, client.Endpoints().PostComments(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(validator.ValidateResponse(apiclient.SchemaCommentList, resp)).To(Succeed())
	})

	It("should echo a created post that matches the schema", func() {
		resp, err := client.Post(ctx, "/posts", fixtures.NewPostPayload().Build())
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusCreated))
		Expect(validator.ValidateResponse(apiclient.SchemaPost, resp)).To(Succeed())
	})
})

var _ = Describe("Client Lifecycle", Label(fixtures.LabelAPI), func() {
	It("should serve requests until closed", func() {
		local := apiclient.New(settings.APIBaseURL, apiclient.WithTimeout(settings.APITimeout))
		defer local.Close()

		resp, err := local.Get(ctx, "/posts/1")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(resp.IsSuccess()).To(BeTrue())
		Expect(resp.Duration).To(BeNumerically(">", 0))
	})

	It("should accept an absolute URL", func() {
		resp, err := client.Get(ctx, client.URL("/posts/1"))
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})
})
