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
	"errors"
	"net/http"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/webtest/pkg/apiclient"
	"github.com/unikorn-cloud/webtest/test/fixtures"
)

var _ = Describe("Posts", Label(fixtures.LabelAPI), func() {
	Context("When reading posts", func() {
		It("should retrieve a single post", Label(fixtures.LabelSmoke), func() {
			resp, err := client.Get(ctx, "/posts/1")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var post map[string]any
			Expect(resp.JSON(&post)).To(Succeed())
			Expect(post).To(HaveKeyWithValue("id", BeNumerically("==", 1)))
			Expect(post).To(HaveKey("title"))
			Expect(post).To(HaveKey("body"))
		})

		It("should limit a listing", Label(fixtures.LabelSmoke), func() {
			resp, err := client.Get(ctx, "/posts", apiclient.WithQuery(url.Values{"_limit": {"5"}}))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var posts []apiclient.Post
			Expect(resp.JSON(&posts)).To(Succeed())
			Expect(posts).To(HaveLen(5))
			GinkgoWriter.Printf("Retrieved %d posts\n", len(posts))
		})

		It("should filter by query parameters", Label(fixtures.LabelSmoke), func() {
			posts, err := client.ListPosts(ctx, apiclient.ListPostsParams{UserID: 1, Limit: 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(posts).NotTo(BeEmpty())

			for _, post := range posts {
				Expect(post.UserID).To(Equal(1), "Every post should belong to user 1")
			}
		})

		It("should parse the response as JSON", Label(fixtures.LabelSmoke), func() {
			post, err := client.GetPost(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(post.UserID).To(BeNumerically(">", 0))
		})

		It("should list the comments on a post", func() {
			comments, err := client.ListPostComments(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(comments).NotTo(BeEmpty())

			for _, comment := range comments {
				Expect(comment.PostID).To(Equal(1))
			}
		})
	})

	Context("When writing posts", func() {
		It("should create a post", Label(fixtures.LabelSmoke), func() {
			payload := fixtures.NewPostPayload().Build()

			created, err := client.CreatePost(ctx, payload)
			Expect(err).NotTo(HaveOccurred(), "Create should answer HTTP 201")
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.Title).To(Equal(payload.Title))
			Expect(created.Body).To(Equal(payload.Body))
			GinkgoWriter.Printf("Created post with ID: %d\n", created.ID)
		})

		It("should create a post with a custom header", func() {
			resp, err := client.Post(ctx, "/posts", fixtures.NewPostPayload().Build(), apiclient.WithHeader("X-Custom-Header", "test-value"))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))

			var created apiclient.Post
			Expect(resp.JSON(&created)).To(Succeed())
			Expect(created.ID).To(BeNumerically(">", 0))
		})

		It("should replace a post", func() {
			payload := fixtures.NewPostPayload().WithID(1).WithTitle("Updated Title").WithBody("Updated body content").Build()

			updated, err := client.UpdatePost(ctx, 1, payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Title).To(Equal("Updated Title"))
		})

		It("should patch a post", func() {
			patched, err := client.PatchPost(ctx, 1, map[string]any{"title": "Patched Title"})
			Expect(err).NotTo(HaveOccurred())
			Expect(patched.Title).To(Equal("Patched Title"))
			Expect(patched.Body).NotTo(BeEmpty(), "Unpatched fields should survive")
		})

		It("should delete a post", func() {
			Expect(client.DeletePost(ctx, 1)).To(Succeed())
		})
	})

	Context("When the post does not exist", func() {
		It("should not error on the generic verb", func() {
			resp, err := client.Get(ctx, "/posts/99999")
			Expect(err).NotTo(HaveOccurred(), "Non 2xx statuses are not transport errors")
			Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusNotFound))
		})

		It("should surface a typed error from the resource helper", func() {
			_, err := client.GetPost(ctx, 99999)
			Expect(err).To(MatchError(apiclient.ErrNotFound))

			var statusErr *apiclient.StatusError
			Expect(errors.As(err, &statusErr)).To(BeTrue(), "Error should be a status error")
			Expect(statusErr.TraceID).NotTo(BeEmpty(), "Errors should carry the trace ID")
			GinkgoWriter.Printf("Expected HTTP 404 error for non-existent post: %v\n", err)
		})
	})

	Context("When issuing a batch of requests", func() {
		It("should retrieve each post in turn", Label(fixtures.LabelSlow), func() {
			responses := make([]*apiclient.Response, 0, 3)

			for id := 1; id <= 3; id++ {
				resp, err := client.Get(ctx, client.Endpoints().Post(id))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				responses = append(responses, resp)
			}

			Expect(responses).To(HaveLen(3))
		})
	})
})
