package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The screens are static shells; all data comes from the JSON API.

func (h *Handler) handleSearchPage(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(searchPageHTML))
}

func (h *Handler) handleDetailsPage(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(detailsPageHTML))
}

func (h *Handler) handlePlaceholder(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", []byte(placeholderSVG))
}

const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="500" height="750" viewBox="0 0 500 750">
<rect width="500" height="750" fill="#2a2a2a"/>
<text x="250" y="375" font-family="sans-serif" font-size="32" fill="#888" text-anchor="middle">No Image</text>
</svg>`

const sharedStyle = `
  <style>
    :root {
      --primary-color: #e50914;
      --background-color: #141414;
      --card-color: #1f1f1f;
      --text-color: #eee;
      --muted-color: #999;
    }
    * { box-sizing: border-box; }
    body {
      font-family: sans-serif;
      background-color: var(--background-color);
      color: var(--text-color);
      margin: 0;
      padding: 20px;
    }
    a { color: inherit; text-decoration: none; }
    button {
      background: var(--primary-color);
      color: #fff;
      border: 0;
      border-radius: 4px;
      padding: 10px 18px;
      font-size: 1rem;
      cursor: pointer;
    }
    button:disabled { opacity: 0.4; cursor: default; }
    .loading, .error { text-align: center; font-size: 18px; margin: 1rem; }
    .error { color: #ff6b6b; }
  </style>`

const searchPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Movie Search</title>` + sharedStyle + `
  <style>
    .search-container { max-width: 640px; margin: 0 auto 24px; text-align: center; }
    .search-container input {
      width: 70%;
      padding: 10px;
      border-radius: 4px;
      border: 1px solid #444;
      background: #000;
      color: var(--text-color);
      font-size: 1rem;
    }
    .movies-list-container {
      display: grid;
      grid-template-columns: repeat(auto-fill, minmax(180px, 1fr));
      gap: 16px;
    }
    .movie-item { background: var(--card-color); border-radius: 6px; overflow: hidden; }
    .movie-item img { width: 100%; display: block; }
    .movie-item h3 { font-size: 1rem; margin: 8px; }
    .movie-item p { color: var(--muted-color); margin: 0 8px 8px; }
    .pagination { display: flex; justify-content: center; align-items: center; gap: 16px; margin: 24px; }
  </style>
</head>
<body>
  <div class="search-container">
    <h1>Search for Movies</h1>
    <p>Enter a movie title to start your search and discover the latest movies in our collection.</p>
    <input type="text" id="query" placeholder="Search for a movie...">
    <button id="find">Find</button>
  </div>
  <p class="loading" id="loading" hidden>Loading...</p>
  <p class="error" id="error" hidden></p>
  <div class="movies-list-container" id="results"></div>
  <div class="pagination" id="pagination" hidden>
    <button id="prev" aria-label="Previous page">Prev</button>
    <span id="page-label"></span>
    <button id="next" aria-label="Next page">Next</button>
  </div>
  <script>
    const $ = (id) => document.getElementById(id);

    function render(view) {
      if (document.activeElement !== $("query")) {
        $("query").value = view.query;
      }
      $("loading").hidden = view.state.status !== "loading";
      $("error").hidden = view.state.status !== "error";
      $("error").textContent = view.state.message || "";

      const list = $("results");
      list.replaceChildren();
      for (const card of view.cards) {
        const item = document.createElement("div");
        item.className = "movie-item";
        const link = document.createElement("a");
        link.href = card.detailsUrl;
        const img = document.createElement("img");
        img.src = card.posterUrl;
        img.alt = card.title;
        const title = document.createElement("h3");
        title.textContent = card.title;
        const date = document.createElement("p");
        date.textContent = card.release_date || "";
        link.append(img, title, date);
        item.append(link);
        list.append(item);
      }

      const p = view.pagination;
      $("pagination").hidden = !p.visible;
      $("prev").disabled = p.prevDisabled;
      $("next").disabled = p.nextDisabled;
      $("page-label").textContent = "Page " + p.currentPage + " of " + p.totalPages;
    }

    // Calls run one at a time in the order they were made, so a search
    // never overtakes the query edit typed before it.
    let queue = Promise.resolve();
    function call(method, url, body) {
      queue = queue.then(() => send(method, url, body));
      return queue;
    }

    async function send(method, url, body) {
      if (method !== "GET" && url !== "/api/search/query") {
        $("loading").hidden = false;
      }
      const opts = { method, headers: { "Accept": "application/json" } };
      if (body !== undefined) {
        opts.headers["Content-Type"] = "application/json";
        opts.body = JSON.stringify(body);
      }
      try {
        const resp = await fetch(url, opts);
        render(await resp.json());
      } catch (e) {
        $("loading").hidden = true;
        $("error").hidden = false;
        $("error").textContent = "fetch failed";
      }
    }

    $("query").addEventListener("input", (e) => call("PUT", "/api/search/query", { query: e.target.value }));
    const find = () => call("POST", "/api/search", { query: $("query").value });
    $("query").addEventListener("keydown", (e) => { if (e.key === "Enter") find(); });
    $("find").addEventListener("click", find);
    $("prev").addEventListener("click", () => call("POST", "/api/search/prev"));
    $("next").addEventListener("click", () => call("POST", "/api/search/next"));

    call("GET", "/api/search");
  </script>
</body>
</html>`

const detailsPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Movie Information</title>` + sharedStyle + `
  <style>
    .movie-details-container { max-width: 960px; margin: 0 auto; }
    .movie-details { display: flex; gap: 24px; flex-wrap: wrap; }
    .image-container img { width: 300px; border-radius: 6px; }
    .movie-info { flex: 1; min-width: 260px; }
    .go-to-back { margin-bottom: 16px; }
  </style>
</head>
<body>
  <p class="loading" id="loading">Loading movie details...</p>
  <p class="error" id="error" hidden></p>
  <div id="content" hidden>
    <button class="go-to-back" id="back">Go Back</button>
    <div class="movie-details-container">
      <h1>Movie Information</h1>
      <div class="movie-details">
        <div class="image-container"><img id="poster" alt=""></div>
        <div class="movie-info">
          <p><strong>Movie Name : </strong><span id="title"></span></p>
          <p><strong>Genres : </strong><span id="genres"></span></p>
          <p><strong>Release Date : </strong><span id="release"></span></p>
          <p><strong>Overview : </strong><span id="overview"></span></p>
          <p><strong>Rating : </strong><span id="rating"></span></p>
          <a id="trailer" target="_blank" rel="noopener noreferrer" hidden><button>Watch Trailer</button></a>
        </div>
      </div>
    </div>
  </div>
  <script>
    const $ = (id) => document.getElementById(id);
    const id = decodeURIComponent(location.pathname.split("/").pop());

    $("back").addEventListener("click", () => history.back());

    function fail(message) {
      $("loading").hidden = true;
      $("error").hidden = false;
      $("error").textContent = message;
    }

    fetch("/api/details/" + encodeURIComponent(id), { headers: { "Accept": "application/json" } })
      .then((resp) => resp.json())
      .then((view) => {
        if (view.state.status === "error") {
          fail(view.state.message);
          return;
        }
        $("loading").hidden = true;
        $("content").hidden = false;
        $("poster").src = view.posterUrl;
        $("poster").alt = view.movie.title;
        $("title").textContent = view.movie.title;
        $("genres").textContent = view.display.genres;
        $("release").textContent = view.display.releaseDate;
        $("overview").textContent = view.display.overview;
        $("rating").textContent = view.display.rating;
        if (view.trailer) {
          $("trailer").href = view.trailer;
          $("trailer").hidden = false;
        }
      })
      .catch(() => fail("fetch failed"));
  </script>
</body>
</html>`
